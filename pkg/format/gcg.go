package format

// Checksum is the function used for the Check: fields of MSF files.
type Checksum func(seq []byte) int

const (
	gcgCycle = 57
	gcgMod   = 10000
)

// GCG is the checksum from the GCG package. Each character, upper
// cased, is weighted by its position, counting 1 to 57 and starting
// again. Gap characters are counted as they are written.
func GCG(seq []byte) int {
	check := 0
	for i, c := range seq {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		check += (i%gcgCycle + 1) * int(c)
	}
	return check % gcgMod
}

// sumChecks gives the global checksum in an MSF header from the
// checksums of each sequence.
func sumChecks(checks []int) int {
	sum := 0
	for _, c := range checks {
		sum += c
	}
	return sum % gcgMod
}
