package twobit

import "github.com/cznic/mathutil"

// IntervalWindow builds ref/alt sequences for a variant at [start, end) on
// name, flanked on the left by the inclusive range [start-windowL, start]
// (clamped at 0) and on the right by the inclusive range [end,
// end+windowR]. It is a thin composition over Sequence, useful to callers that
// need padded context around a variant call without re-deriving flanking
// coordinates themselves.
func (h *Handle) IntervalWindow(name string, start, end uint32, ref, alt string, windowL, windowR uint32) (seqRef, seqAlt string, ok bool) {
	left, ok := h.boundedSequence(name, start, windowL)
	if !ok {
		return "", "", false
	}
	right, ok := h.Sequence(name, end, end+windowR)
	if !ok {
		return "", "", false
	}

	return left + ref + right, left + alt + right, true
}

// IntervalBound builds ref/alt sequences for a variant at [start, end) on
// name, clamped to the enclosing interval (e.g. an exon) rather than a
// fixed-width window: the left flank is the inclusive range
// [intervalStart, max(intervalStart, start)] and the right flank the
// inclusive range [min(intervalEnd, end), intervalEnd].
func (h *Handle) IntervalBound(name string, start, end uint32, refInExon, alt string, intervalStart, intervalEnd uint32) (seqRef, seqAlt string, ok bool) {
	boundL := uint32(mathutil.Max(int(intervalStart), int(start)))
	left, ok := h.Sequence(name, intervalStart, boundL)
	if !ok {
		return "", "", false
	}

	boundR := uint32(mathutil.Min(int(intervalEnd), int(end)))
	right, ok := h.Sequence(name, boundR, intervalEnd)
	if !ok {
		return "", "", false
	}

	return left + refInExon + right, left + alt + right, true
}

// boundedSequence reads [start-windowL, start], clamping the left edge at
// 0 rather than underflowing.
func (h *Handle) boundedSequence(name string, start, windowL uint32) (string, bool) {
	lo := uint32(0)
	if windowL <= start {
		lo = start - windowL
	}
	return h.Sequence(name, lo, start)
}
