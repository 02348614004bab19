package common

import "strings"

// ReverseComplement returns the reverse complement of a DNA sequence.
// Comparison is case-insensitive and any non-ACGT character becomes 'N'.
func ReverseComplement(seq string) string {
	var rc strings.Builder
	rc.Grow(len(seq))
	seq = strings.ToUpper(seq)
	for i := len(seq) - 1; i >= 0; i-- {
		switch seq[i] {
		case 'A':
			rc.WriteByte('T')
		case 'T':
			rc.WriteByte('A')
		case 'C':
			rc.WriteByte('G')
		case 'G':
			rc.WriteByte('C')
		default:
			rc.WriteByte('N')
		}
	}
	return rc.String()
}
