// Package alphabet knows which characters may appear in an aligned
// sequence. It recognises gaps, holds a few standard alphabets and
// can guess whether a set of sequences is protein or nucleotide.
// There is no state here. Everything is a lookup table.
package alphabet

import (
	"strings"
)

// Gap symbols. A minus sign is the usual one, '.' turns up in
// Stockholm and MSF files and '~' in GCG files.
var gapSyms = [256]bool{'-': true, '.': true, '~': true}

// IsGap says if c is one of the symbols meaning "no residue here".
func IsGap(c byte) bool { return gapSyms[c] }

// Alphabet is a set of acceptable residue characters. Gaps are
// always acceptable, so they are not listed.
type Alphabet struct {
	name  string
	valid [256]bool
}

// Name returns the name the alphabet was built with.
func (a *Alphabet) Name() string { return a.name }

// Valid says if c is a gap or a residue in the alphabet.
func (a *Alphabet) Valid(c byte) bool { return gapSyms[c] || a.valid[c] }

// New makes an alphabet from the residues in syms. Both upper
// and lower case versions of letters are accepted, since we keep
// case as we found it.
func New(name, syms string) *Alphabet {
	a := &Alphabet{name: name}
	for i := 0; i < len(syms); i++ {
		c := syms[i]
		a.valid[c] = true
		switch {
		case 'a' <= c && c <= 'z':
			a.valid[c-'a'+'A'] = true
		case 'A' <= c && c <= 'Z':
			a.valid[c-'A'+'a'] = true
		}
	}
	return a
}

// newAny accepts every printable, non-white ascii character.
func newAny() *Alphabet {
	a := &Alphabet{name: "any"}
	for c := '!'; c <= '~'; c++ {
		a.valid[c] = true
	}
	return a
}

// The standard alphabets.
var (
	Any     = newAny()
	DNA     = New("dna", "ACGTRYSWKMBDHVN")
	RNA     = New("rna", "ACGURYSWKMBDHVN")
	Protein = New("protein", "ACDEFGHIKLMNPQRSTVWYBZXUO*")
)

// ByName returns one of the standard alphabets. An empty name
// gives Any. The second return value is false for names we do not
// know.
func ByName(name string) (*Alphabet, bool) {
	switch strings.ToLower(name) {
	case "", "any":
		return Any, true
	case "dna", "nucleotide":
		return DNA, true
	case "rna":
		return RNA, true
	case "protein", "aa":
		return Protein, true
	}
	return nil, false
}
