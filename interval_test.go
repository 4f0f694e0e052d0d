package twobit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fortyBaseFixture builds a 40-base fixture of "ACGT" repeated ten times,
// packed four bases per byte (each byte is 0x9C, the packing of "ACGT").
func fortyBaseFixture(t *testing.T) *Handle {
	t.Helper()
	packed := make([]byte, 10)
	for i := range packed {
		packed[i] = 0x9C
	}
	path := writeTwoBitFile(t, []fabricatedEntry{{name: "chr1", dna: 40, packed: packed}})
	h, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestIntervalWindow(t *testing.T) {
	h := fortyBaseFixture(t)

	ref, alt, ok := h.IntervalWindow("chr1", 10, 15, "X", "Y", 3, 3)
	require.True(t, ok)
	if ref != "TACGXTACG" {
		t.Errorf("ref: got %q, want %q", ref, "TACGXTACG")
	}
	if alt != "TACGYTACG" {
		t.Errorf("alt: got %q, want %q", alt, "TACGYTACG")
	}
}

func TestIntervalWindowClampsAtZero(t *testing.T) {
	h := fortyBaseFixture(t)

	// windowL exceeds start: the left flank must clamp at 0, not underflow.
	ref, _, ok := h.IntervalWindow("chr1", 2, 5, "X", "Y", 10, 0)
	require.True(t, ok)
	if ref[:2] != "AC" {
		t.Errorf("got %q, want a left flank starting at position 0 (\"AC...\")", ref)
	}
}

func TestIntervalBound(t *testing.T) {
	h := fortyBaseFixture(t)

	ref, alt, ok := h.IntervalBound("chr1", 8, 12, "Z", "W", 5, 20)
	require.True(t, ok)
	if ref != "CGTAZACGTACGTA" {
		t.Errorf("ref: got %q, want %q", ref, "CGTAZACGTACGTA")
	}
	if alt != "CGTAWACGTACGTA" {
		t.Errorf("alt: got %q, want %q", alt, "CGTAWACGTACGTA")
	}
}

func TestIntervalWindowUnknownSequence(t *testing.T) {
	h := fortyBaseFixture(t)

	_, _, ok := h.IntervalWindow("chrX", 10, 15, "X", "Y", 3, 3)
	if ok {
		t.Errorf("expected false for an unknown sequence name")
	}
}
