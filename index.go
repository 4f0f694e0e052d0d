package twobit

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Sequence holds the decoded metadata for one named entry in a .2bit
// directory. All offsets are relative to the memory-mapped file, not to the
// packed payload itself, so a Sequence remains valid only as long as the
// Handle that produced it.
type Sequence struct {
	nDNABases  uint32
	unkBlocks  []Block
	maskBlocks []Block
	dnaOffset  int // offset of the first packed DNA byte within the map
}

// Len returns the logical base count of the sequence.
func (s *Sequence) Len() uint32 { return s.nDNABases }

// UnknownBlocks returns the ordered, non-overlapping runs that must render
// as N regardless of the packed bits.
func (s *Sequence) UnknownBlocks() []Block { return s.unkBlocks }

// MaskBlocks returns the ordered soft-mask runs, carried for round-trip
// fidelity. The range decoder does not alter its output based on these.
func (s *Sequence) MaskBlocks() []Block { return s.maskBlocks }

// buildIndex validates the .2bit header at the start of data and walks the
// sequence directory, returning an ordered list of names (directory order)
// and a name -> Sequence map. It never panics on malformed input: every
// read that would run past the end of data is surfaced as ErrCorruptDirectory.
func buildIndex(data []byte) ([]string, map[string]*Sequence, error) {
	sig, err := readU32(data, 0)
	if err != nil {
		return nil, nil, err
	}
	if sig != signature {
		return nil, nil, errors.Wrapf(ErrInvalidSignature, "got 0x%08X, want 0x%08X (opposite-endian files are rejected)", sig, uint32(signature))
	}

	ver, err := readU32(data, 4)
	if err != nil {
		return nil, nil, err
	}
	if ver != version {
		return nil, nil, errors.Wrapf(ErrUnsupportedVersion, "got %d, want %d", ver, uint32(version))
	}

	count, err := readU32(data, 8)
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return nil, nil, ErrEmptyFile
	}

	reserved, err := readU32(data, 12)
	if err != nil {
		return nil, nil, err
	}
	if reserved != 0 {
		return nil, nil, errors.Wrapf(ErrReservedNonZero, "got %d", reserved)
	}

	// count is an untrusted header word used below only as a capacity hint
	// for names/index; bound it against the smallest possible directory
	// entry (1 name-length byte + 1 name byte + 4-byte record offset) so a
	// fabricated count can't drive a huge allocation before the per-entry
	// walk ever touches real bytes.
	if uint64(count) > uint64(len(data))/6 {
		return nil, nil, errors.Wrapf(ErrCorruptDirectory, "sequence count %d cannot fit in a %d-byte file", count, len(data))
	}

	names := make([]string, 0, count)
	index := make(map[string]*Sequence, count)

	cursor := headerSize
	for i := uint32(0); i < count; i++ {
		nameLen, err := readU8(data, cursor)
		if err != nil {
			return nil, nil, err
		}
		nameBytes, err := readBytes(data, cursor+1, int(nameLen))
		if err != nil {
			return nil, nil, err
		}
		if !utf8.Valid(nameBytes) {
			return nil, nil, errors.Wrapf(ErrCorruptDirectory, "sequence name at directory entry %d is not valid UTF-8", i)
		}
		name := string(nameBytes)

		recordOffset, err := readU32(data, cursor+1+int(nameLen))
		if err != nil {
			return nil, nil, err
		}

		seq, err := parseRecord(data, int(recordOffset))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "sequence %q", name)
		}

		if _, dup := index[name]; dup {
			return nil, nil, errors.Wrapf(ErrCorruptDirectory, "duplicate sequence name %q", name)
		}
		index[name] = seq
		names = append(names, name)

		cursor += 1 + int(nameLen) + 4
	}

	return names, index, nil
}

// parseRecord decodes the sequence record at off: dnaSize, the unknown and
// mask block lists, the reserved word, and the start of the packed DNA
// payload. It also checks that the packed payload fits entirely within the
// mapped region.
func parseRecord(data []byte, off int) (*Sequence, error) {
	dnaSize, err := readU32(data, off)
	if err != nil {
		return nil, err
	}

	unkBlocks, next, err := readBlockList(data, off+4)
	if err != nil {
		return nil, err
	}

	maskBlocks, next, err := readBlockList(data, next)
	if err != nil {
		return nil, err
	}

	// reserved word
	if _, err := readU32(data, next); err != nil {
		return nil, err
	}
	dnaOffset := next + 4

	packedLen := packedSize(dnaSize)
	if dnaOffset+packedLen > len(data) {
		return nil, errors.Wrapf(ErrCorruptDirectory, "packed DNA payload (%d bytes at offset %d) extends past end of map (%d bytes)", packedLen, dnaOffset, len(data))
	}

	for _, b := range unkBlocks {
		if uint64(b.Start)+uint64(b.Length) > uint64(dnaSize) {
			return nil, errors.Wrapf(ErrCorruptDirectory, "unknown block [%d,%d) exceeds dnaSize %d", b.Start, b.Start+b.Length, dnaSize)
		}
	}
	for _, b := range maskBlocks {
		if uint64(b.Start)+uint64(b.Length) > uint64(dnaSize) {
			return nil, errors.Wrapf(ErrCorruptDirectory, "mask block [%d,%d) exceeds dnaSize %d", b.Start, b.Start+b.Length, dnaSize)
		}
	}

	return &Sequence{
		nDNABases:  dnaSize,
		unkBlocks:  unkBlocks,
		maskBlocks: maskBlocks,
		dnaOffset:  dnaOffset,
	}, nil
}

// packedSize returns the number of packed bytes needed to store n bases, 4
// bases per byte.
func packedSize(n uint32) int {
	return int((n + 3) / 4)
}
