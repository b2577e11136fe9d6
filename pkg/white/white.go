// Package white removes white space from byte slices. Sequence lines
// in every alignment format may carry spaces (MSF groups residues in
// tens), so the readers squeeze them out before storing anything.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite says if c is ascii white space.
func IsWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place, and removes all the white
// space. The returned slice has the same backing array, so the
// capacity is unchanged.
func Remove(s []byte) []byte {
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	return s[:n]
}

// Has says if there is any white space in s.
func Has(s string) bool {
	for i := 0; i < len(s); i++ {
		if asciiSpace[s[i]] {
			return true
		}
	}
	return false
}
