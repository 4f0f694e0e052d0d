package twobit

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Handle owns a read-only memory map of one .2bit file plus its decoded
// sequence index. It is safe for concurrent use by multiple readers: no
// operation mutates the mapped pages or the index once Open returns, and
// every RangeIter holds only its own cursors.
//
// The map is released exactly once, by Close. Every Sequence and every
// RangeIter produced by this Handle borrows the map and must not be used
// afterwards -- RangeIter enforces this dynamically by checking a closed
// flag on every Scan.
type Handle struct {
	file  *os.File
	data  []byte
	names []string
	index map[string]*Sequence

	closedFlag int32

	logger *log.Logger
}

// OpenOption configures Open.
type OpenOption func(*openOptions)

type openOptions struct {
	madvise bool
	logger  *log.Logger
}

// WithMadvise controls whether Open hints the kernel that access to the
// mapped file will be random (MADV_RANDOM), which it is by default: .2bit
// queries name an arbitrary sequence and an arbitrary coordinate range. A
// madvise failure is logged and otherwise ignored -- it is a performance
// hint, never a correctness requirement.
func WithMadvise(enabled bool) OpenOption {
	return func(o *openOptions) { o.madvise = enabled }
}

// WithLogger directs Open's (non-fatal) diagnostics to logger instead of
// the default logger.
func WithLogger(logger *log.Logger) OpenOption {
	return func(o *openOptions) { o.logger = logger }
}

// Open maps path read-only, validates the .2bit header, and builds the
// sequence index. The returned Handle must eventually be closed with
// Close.
func Open(path string, opts ...OpenOption) (*Handle, error) {
	options := openOptions{madvise: true, logger: log.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "twobit: open %s", path)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "twobit: stat %s", path)
	}
	size := info.Size()
	if size == 0 {
		f.Close()
		return nil, errors.Wrapf(ErrEmptyFile, "%s is empty", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "twobit: mmap %s", path)
	}

	if options.madvise {
		if err := unix.Madvise(data, unix.MADV_RANDOM); err != nil {
			options.logger.Printf("twobit: madvise(MADV_RANDOM) on %s failed (continuing): %v", path, err)
		}
	}

	names, index, err := buildIndex(data)
	if err != nil {
		unix.Munmap(data)
		f.Close()
		return nil, errors.Wrapf(err, "twobit: parse %s", path)
	}

	return &Handle{
		file:   f,
		data:   data,
		names:  names,
		index:  index,
		logger: options.logger,
	}, nil
}

// Close unmaps the file and releases its descriptor. Any RangeIter
// obtained from this Handle stops producing bases once Close returns.
// Close must be called exactly once.
func (h *Handle) Close() error {
	atomic.StoreInt32(&h.closedFlag, 1)

	var err error
	if h.data != nil {
		err = unix.Munmap(h.data)
		h.data = nil
	}
	if cerr := h.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func (h *Handle) closed() bool {
	return atomic.LoadInt32(&h.closedFlag) != 0
}

// SequenceLen returns the logical base count of name, and whether name is
// present.
func (h *Handle) SequenceLen(name string) (uint32, bool) {
	seq, ok := h.index[name]
	if !ok {
		return 0, false
	}
	return seq.nDNABases, true
}

// SequenceLenNoN returns the base count of name excluding any bases that
// fall within an unknown block, and whether name is present.
func (h *Handle) SequenceLenNoN(name string) (uint32, bool) {
	seq, ok := h.index[name]
	if !ok {
		return 0, false
	}
	var unk uint64
	for _, b := range seq.unkBlocks {
		unk += uint64(b.Length)
	}
	return uint32(uint64(seq.nDNABases) - unk), true
}

// SequenceNames returns the names of every sequence in the file, in
// directory order.
func (h *Handle) SequenceNames() []string {
	return h.names
}

// Sequence materializes the inclusive range [start, end] of name as a
// string, padding with N past the end of the sequence. It returns
// ("", false) only if name is unknown; if start > end it returns ("", true),
// matching SequenceIter's documented handling of inverted ranges.
func (h *Handle) Sequence(name string, start, end uint32) (string, bool) {
	it, ok := h.SequenceIter(name, start, end)
	if !ok {
		return "", false
	}
	return it.collect(), true
}

// SequenceIter returns a single-pass iterator over the inclusive range
// [start, end] of name. It returns (nil, false) if name is unknown. If
// start > end the returned iterator is already drained (its first Scan
// returns false).
func (h *Handle) SequenceIter(name string, start, end uint32) (*RangeIter, bool) {
	seq, ok := h.index[name]
	if !ok {
		return nil, false
	}
	return newRangeIter(h, seq, start, end), true
}

// BaseFrequencies computes the proportion of A, C, G, T bases (in that
// order) over the whole of name, counted through the overlay-aware range
// decoder so that N bases are excluded from both numerator and
// denominator. It returns ([4]float64{}, false) if name is unknown or if
// the sequence contains no A/C/G/T base at all (an all-N sequence, or a
// zero-length one).
func (h *Handle) BaseFrequencies(name string) ([4]float64, bool) {
	seq, ok := h.index[name]
	if !ok {
		return [4]float64{}, false
	}
	if seq.nDNABases == 0 {
		return [4]float64{}, false
	}

	it := newRangeIter(h, seq, 0, seq.nDNABases-1)

	var counts [4]float64
	for it.Scan() {
		switch it.Base() {
		case baseA:
			counts[0]++
		case baseC:
			counts[1]++
		case baseG:
			counts[2]++
		case baseT:
			counts[3]++
		}
	}

	sum := counts[0] + counts[1] + counts[2] + counts[3]
	if sum == 0 {
		return [4]float64{}, false
	}

	return [4]float64{counts[0] / sum, counts[1] / sum, counts[2] / sum, counts[3] / sum}, true
}
