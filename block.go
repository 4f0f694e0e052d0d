package twobit

import "github.com/pkg/errors"

// Block is a half-open-by-length interval [Start, Start+Length) on a
// sequence, used both for unknown-base ("N") runs and for soft-mask runs.
// Length is always >= 1. Within one Sequence's block list, blocks are
// non-overlapping and sorted ascending by Start.
type Block struct {
	Start  uint32
	Length uint32
}

// End returns the last base covered by b, inclusive.
func (b Block) End() uint32 {
	return b.Start + b.Length - 1
}

// readBlockList decodes a length-prefixed pair of parallel u32 arrays
// (starts, then sizes) at off into an ordered block list, returning the
// offset immediately following the sizes array. A zero count is valid and
// yields an empty list at off+4. count comes straight off the wire, so its
// two arrays are bounds-checked against data before anything is allocated:
// trusting it as a make() capacity hint would let a fabricated count of a
// few billion drive a multi-gigabyte allocation before a single per-element
// read ever runs.
func readBlockList(data []byte, off int) ([]Block, int, error) {
	count, err := readU32(data, off)
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return nil, off + 4, nil
	}

	startsOff := off + 4
	arraysEnd := uint64(startsOff) + 8*uint64(count)
	if arraysEnd > uint64(len(data)) {
		return nil, 0, errors.Wrapf(ErrCorruptDirectory, "block list at offset %d declares %d entries, which needs %d bytes but only %d remain", off, count, arraysEnd-uint64(startsOff), len(data)-startsOff)
	}

	n := int(count)
	sizesOff := startsOff + 4*n
	next := sizesOff + 4*n

	blocks := make([]Block, n)
	for i := 0; i < n; i++ {
		start, err := readU32(data, startsOff+4*i)
		if err != nil {
			return nil, 0, err
		}
		blocks[i].Start = start
	}
	for i := 0; i < n; i++ {
		size, err := readU32(data, sizesOff+4*i)
		if err != nil {
			return nil, 0, err
		}
		blocks[i].Length = size
	}

	return blocks, next, nil
}
