package twobit

import "github.com/cznic/mathutil"

// RangeIter is a single-pass, forward-only iterator over the bases of one
// sequence range. It borrows the Handle's memory-mapped byte slice and must
// not be used after the Handle that produced it is closed; Scan reports
// false immediately if that happens instead of reading unmapped memory.
//
// Successive characters are produced in strictly ascending sequence-
// coordinate order. There is no ordering relationship between distinct
// RangeIters, and they share no mutable state.
type RangeIter struct {
	handle *Handle

	data      []byte
	bytePtr   int  // current byte offset into data
	bitOffset uint // 0..3, intra-byte base offset

	pos       uint64 // absolute sequence coordinate of the next packed base
	remaining uint64 // packed bases left to emit
	pad       uint64 // trailing Ns left to emit once remaining == 0

	unkBlocks   []Block
	ubIdx       int
	ubExhausted bool
	ubStart     uint64
	ubEnd       uint64

	cur byte
}

// newRangeIter constructs an iterator over [start, end] (inclusive) of seq.
// start > end yields an iterator that is immediately drained, per the
// package's documented handling of inverted ranges.
func newRangeIter(h *Handle, seq *Sequence, start, end uint32) *RangeIter {
	it := &RangeIter{handle: h, data: h.data, unkBlocks: seq.unkBlocks}

	if start > end {
		it.ubExhausted = true
		return it
	}

	n := uint64(seq.nDNABases)
	s, e := uint64(start), uint64(end)
	rsize := e - s + 1

	var pad uint64
	if e >= n {
		if s >= n {
			pad = rsize
			rsize = 0
		} else {
			pad = e - n + 1
			e = n - 1
			rsize = e - s + 1
		}
	}

	it.pos = s
	it.remaining = rsize
	it.pad = pad
	it.bytePtr = seq.dnaOffset + int(s/4)
	it.bitOffset = uint(s % 4)

	if len(seq.unkBlocks) == 0 {
		it.ubExhausted = true
	} else {
		it.ubIdx = 0
		it.ubStart = uint64(seq.unkBlocks[0].Start)
		it.ubEnd = uint64(seq.unkBlocks[0].End())
	}

	return it
}

// advance moves the packed cursor forward by one base.
func (it *RangeIter) advance() {
	it.pos++
	it.bitOffset++
	if it.bitOffset == 4 {
		it.bitOffset = 0
		it.bytePtr++
	}
}

// Scan advances the iterator and reports whether a base is available via
// Base. It returns false once the range -- packed bases plus trailing N
// padding -- is exhausted, or if the owning Handle has since been closed.
func (it *RangeIter) Scan() bool {
	if it.handle.closed() {
		return false
	}

	if it.remaining == 0 {
		if it.pad == 0 {
			return false
		}
		it.pad--
		it.cur = baseN
		return true
	}

	for !it.ubExhausted {
		if it.pos > it.ubEnd {
			it.ubIdx++
			if it.ubIdx == len(it.unkBlocks) {
				it.ubExhausted = true
				break
			}
			it.ubStart = uint64(it.unkBlocks[it.ubIdx].Start)
			it.ubEnd = uint64(it.unkBlocks[it.ubIdx].End())
			continue
		}
		if it.pos >= it.ubStart {
			it.cur = baseN
			it.remaining--
			it.advance()
			return true
		}
		break
	}

	it.cur = byteToBase(it.data[it.bytePtr], it.bitOffset)
	it.remaining--
	it.advance()
	return true
}

// Base returns the base produced by the most recent successful call to
// Scan. Calling it before Scan or after Scan returns false is undefined.
func (it *RangeIter) Base() byte { return it.cur }

// Remaining returns the exact number of bases left to produce, including
// any trailing N padding.
func (it *RangeIter) Remaining() int {
	return mathutil.Max(0, int(it.remaining+it.pad))
}

// collect drains it into a string. Used by Handle.Sequence.
func (it *RangeIter) collect() string {
	n := it.Remaining()
	buf := make([]byte, 0, n)
	for it.Scan() {
		buf = append(buf, it.Base())
	}
	return string(buf)
}
