// Copyright 2015 Andrew E. Bruno. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

// Package twobit implements a read-only, memory-mapped random-access reader
// for the UCSC Genome Browser ".2bit" file format.
package twobit

// signature is the magic number at offset 0 of every .2bit file. A file
// whose first four bytes decode to anything else, in either byte order, is
// either not a .2bit file or was written in the opposite endianness -- this
// package only reads little-endian files, so either case is a hard error.
const signature = 0x1A412743

// version is the only directory format this package understands.
const version = 0

// Base letters, in the order the packed 2-bit encoding uses.
const (
	baseT = 'T'
	baseC = 'C'
	baseA = 'A'
	baseG = 'G'
	baseN = 'N'
)

// bytesToBase maps a 2-bit packed value (0..3) to its base letter. Offset 0
// within a byte is the most significant bit pair; this ordering is fixed by
// the file format, see byteToBase.
var bytesToBase = [4]byte{baseT, baseC, baseA, baseG}

// headerSize is the fixed 16-byte .2bit header (signature, version, count,
// reserved).
const headerSize = 16
