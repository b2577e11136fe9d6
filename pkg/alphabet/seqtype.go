// 6 Apr 2020

package alphabet

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	SeqUnchecked SeqType = iota // Has not been looked at yet
	SeqUnknown                  // Really unknown, not a protein or nucleotide
	SeqProtein                  //
	SeqDNA                      //
	SeqRNA                      //
	SeqNtide                    // Nucleotide, but cannot tell if DNA or RNA
)

func (t SeqType) String() string {
	switch t {
	case SeqUnchecked:
		return "unchecked"
	case SeqProtein:
		return "protein"
	case SeqDNA:
		return "DNA"
	case SeqRNA:
		return "RNA"
	case SeqNtide:
		return "nucleotide"
	}
	return "unknown"
}

// IsNtide is true for DNA, RNA and plain nucleotide.
func (t SeqType) IsNtide() bool { return t == SeqDNA || t == SeqRNA || t == SeqNtide }

// Letters that should only turn up in proteins. B, J, O, X, Z are not
// here, since they are ambiguous or too rare to say anything. N is
// left out, since it is the commonest nucleotide wildcard.
var protType = []byte{
	'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
	'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

// Guess looks at a set of sequences and returns its best guess
// as to the type. Case is ignored and gaps do not count.
func Guess(seqs ...[]byte) SeqType {
	var used [256]bool
	for _, s := range seqs {
		for _, c := range s {
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			used[c] = true
		}
	}
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //          just return protein type.
			return SeqProtein
		}
	}
	for c := 0; c < len(used); c++ {
		if !used[c] || gapSyms[c] {
			continue
		}
		switch c {
		case 'A', 'C', 'G', 'T', 'U', 'N':
		default:
			return SeqUnknown
		}
	}
	switch {
	case used['T'] && !used['U']:
		return SeqDNA
	case used['U'] && !used['T']:
		return SeqRNA
	}
	return SeqNtide
}
