package msa

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	"github.com/andrew-torda/msaconv/pkg/white"
)

// Kind says which rule an alignment broke.
type Kind byte

const (
	WidthMismatch Kind = iota + 1 // sequences of different lengths
	DuplicateID                   // two records with one identifier
	BadID                         // empty identifier or one with white space
	BadSymbol                     // character not in the alphabet
	BadDesc                       // line break in a description
)

func (k Kind) String() string {
	switch k {
	case WidthMismatch:
		return "width mismatch"
	case DuplicateID:
		return "duplicate identifier"
	case BadID:
		return "bad identifier"
	case BadSymbol:
		return "bad symbol"
	case BadDesc:
		return "bad description"
	}
	return "unknown"
}

// ValidationError is returned when an alignment can be read, but is
// not a proper alignment.
type ValidationError struct {
	Kind     Kind
	IDs      []string // the offending record(s)
	Want     int      // for WidthMismatch, the alignment width
	Got      int      // and the length of the offending sequence
	Pos      int      // for BadSymbol, the column (from 0)
	Sym      byte     // and the character
	Alphabet string   // and the alphabet it is not in
}

func (e *ValidationError) Error() string {
	ids := strings.Join(e.IDs, ", ")
	switch e.Kind {
	case WidthMismatch:
		return fmt.Sprintf("%v: sequence \"%s\" has length %d, but other sequences have length %d",
			e.Kind, ids, e.Got, e.Want)
	case BadSymbol:
		return fmt.Sprintf("%v: sequence \"%s\" has '%c' at position %d, not in %s alphabet",
			e.Kind, ids, e.Sym, e.Pos+1, e.Alphabet)
	case BadID:
		return fmt.Sprintf("%v: \"%s\" is empty or contains white space", e.Kind, ids)
	case BadDesc:
		return fmt.Sprintf("%v: sequence \"%s\" has a line break in its description", e.Kind, ids)
	}
	return fmt.Sprintf("%v: \"%s\"", e.Kind, ids)
}

// Validator checks the rules every alignment must follow.
// Alphabet says which residues are acceptable. If it is nil, any
// printable, non-white character is.
type Validator struct {
	Alphabet *alphabet.Alphabet
}

// Check returns nil if a is a proper alignment, or a
// *ValidationError saying what is wrong with it. Identifiers are
// looked at first, with descriptions, then lengths, then the
// symbols.
func (v *Validator) Check(a *Alignment) error {
	alfbt := alphabet.Any
	if v != nil && v.Alphabet != nil {
		alfbt = v.Alphabet
	}
	if a.Len() == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a.recs))
	for _, r := range a.recs {
		if r.ID == "" || white.Has(r.ID) {
			return &ValidationError{Kind: BadID, IDs: []string{r.ID}}
		}
		if seen[r.ID] {
			return &ValidationError{Kind: DuplicateID, IDs: []string{r.ID}}
		}
		seen[r.ID] = true
		if strings.ContainsAny(r.Desc, "\n\r") {
			return &ValidationError{Kind: BadDesc, IDs: []string{r.ID}}
		}
	}
	width := a.Width()
	for _, r := range a.recs[1:] {
		if len(r.Seq) != width {
			return &ValidationError{Kind: WidthMismatch, IDs: []string{r.ID}, Want: width, Got: len(r.Seq)}
		}
	}
	for _, r := range a.recs {
		for i, c := range r.Seq {
			if !alfbt.Valid(c) {
				return &ValidationError{
					Kind: BadSymbol, IDs: []string{r.ID},
					Pos: i, Sym: c, Alphabet: alfbt.Name(),
				}
			}
		}
	}
	return nil
}

// Check uses a Validator that accepts any printable symbol.
func Check(a *Alignment) error {
	var v Validator
	return v.Check(a)
}
