// Package dnaops provides pure string transformations over already-decoded
// DNA sequences: reverse-complement and alphabet-to-integer mapping. These
// do not touch the .2bit format at all and are kept separate from the core
// reader so that the reader's mmap lifetime discipline has nothing to do
// with them.
package dnaops

// complement maps each of A, C, G, T (either case) to its complement.
// Letters not in the map (including 'N'/'n') become 'N' in
// ReverseComplement.
var complement = map[byte]byte{
	'a': 't', 'A': 'T',
	'c': 'g', 'C': 'G',
	'g': 'c', 'G': 'C',
	't': 'a', 'T': 'A',
}

// ReverseComplement returns the reverse complement of seq. Bases outside
// {A,C,G,T,a,c,g,t} become N.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := complement[seq[i]]
		if !ok {
			c = 'N'
		}
		out[len(seq)-1-i] = c
	}
	return string(out)
}

// ToNumeric converts seq into a byte vector where A maps to offset, C to
// offset+1, G to offset+2, T to offset+3, and any other character to
// offset+4. Case-insensitive.
func ToNumeric(seq string, offset byte) []byte {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'a', 'A':
			out[i] = offset
		case 'c', 'C':
			out[i] = offset + 1
		case 'g', 'G':
			out[i] = offset + 2
		case 't', 'T':
			out[i] = offset + 3
		default:
			out[i] = offset + 4
		}
	}
	return out
}
