package twobit

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// readU8 reads a single byte at off. It fails rather than panicking when off
// is outside data, so that a corrupt directory surfaces as a structured
// open-time error instead of undefined behavior.
func readU8(data []byte, off int) (byte, error) {
	if off < 0 || off+1 > len(data) {
		return 0, errors.Wrapf(ErrCorruptDirectory, "read u8 at offset %d: out of range (size %d)", off, len(data))
	}
	return data[off], nil
}

// readU32 reads a little-endian uint32 at off.
func readU32(data []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(data) {
		return 0, errors.Wrapf(ErrCorruptDirectory, "read u32 at offset %d: out of range (size %d)", off, len(data))
	}
	return binary.LittleEndian.Uint32(data[off : off+4]), nil
}

// readBytes reads n consecutive bytes starting at off.
func readBytes(data []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(data) {
		return nil, errors.Wrapf(ErrCorruptDirectory, "read %d bytes at offset %d: out of range (size %d)", n, off, len(data))
	}
	return data[off : off+n], nil
}
