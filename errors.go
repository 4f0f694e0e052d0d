package twobit

import "github.com/pkg/errors"

// Open-time error kinds. Query operations (Sequence, SequenceLen, ...) never
// return an error: an unknown name is represented by a false/absence return
// and an out-of-range coordinate is padded with N instead.
var (
	// ErrInvalidSignature is returned when the first 4 bytes of the file do
	// not match the .2bit magic number, in either byte order. This package
	// does not support cross-endian files: an opposite-endian file is
	// reported the same way as a non-.2bit file.
	ErrInvalidSignature = errors.New("twobit: invalid signature")

	// ErrUnsupportedVersion is returned when the version word is non-zero.
	ErrUnsupportedVersion = errors.New("twobit: unsupported version")

	// ErrEmptyFile is returned when the file itself is zero bytes, or when
	// its header declares zero sequences.
	ErrEmptyFile = errors.New("twobit: empty file or zero sequence count")

	// ErrReservedNonZero is returned when a reserved header field is
	// non-zero.
	ErrReservedNonZero = errors.New("twobit: reserved field non-zero")

	// ErrCorruptDirectory is returned when any index-time read would run
	// past the end of the mapped file, a declared payload extends past
	// end-of-map, or a sequence name is not valid UTF-8.
	ErrCorruptDirectory = errors.New("twobit: corrupt directory")
)
