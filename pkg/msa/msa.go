// 20 Dec 2017

// Package msa is the in-memory multiple sequence alignment.
// It does not know which file format an alignment came from. It is
// a list of records (identifier, optional description, aligned
// sequence), in the order they were read, all the same length.
//
// An Alignment is built once, by a reader or by New, and is not
// changed afterwards. The accessors hand out copies, so callers can
// do what they like with them. Anything that changes an alignment,
// like Squash, returns a new one.
package msa

import (
	"bytes"
	"fmt"
	"strings"
)

// Record is one row of an alignment.
type Record struct {
	ID   string // first word of the header, unique within an alignment
	Desc string // rest of the header, may be empty
	Seq  []byte // aligned residues and gaps
}

// Len is the number of columns in the record.
func (r Record) Len() int { return len(r.Seq) }

func (r Record) copy() Record {
	r.Seq = append([]byte(nil), r.Seq...)
	return r
}

// Alignment is an ordered set of records plus a little header
// information (program, version, name) that some formats carry.
type Alignment struct {
	recs  []Record
	annot map[string]string
}

// New makes an alignment from recs. It copies everything, so the
// caller can reuse recs. It does not check anything. Use a Validator
// for that.
func New(recs []Record, annot map[string]string) *Alignment {
	a := &Alignment{recs: make([]Record, len(recs))}
	for i, r := range recs {
		a.recs[i] = r.copy()
	}
	if len(annot) > 0 {
		a.annot = make(map[string]string, len(annot))
		for k, v := range annot {
			a.annot[k] = v
		}
	}
	return a
}

// Len returns the number of records.
func (a *Alignment) Len() int {
	if a == nil {
		return 0
	}
	return len(a.recs)
}

// Width returns the number of columns, which is the length of the
// first sequence. If the alignment has been validated, this is the
// length of all the sequences.
func (a *Alignment) Width() int {
	if a.Len() == 0 {
		return 0
	}
	return len(a.recs[0].Seq)
}

// Record returns a copy of record i.
func (a *Alignment) Record(i int) Record { return a.recs[i].copy() }

// Records returns a copy of all the records.
func (a *Alignment) Records() []Record {
	ret := make([]Record, len(a.recs))
	for i, r := range a.recs {
		ret[i] = r.copy()
	}
	return ret
}

// ID returns the identifier of record i.
func (a *Alignment) ID(i int) string { return a.recs[i].ID }

// Desc returns the description of record i.
func (a *Alignment) Desc(i int) string { return a.recs[i].Desc }

// Residue returns the symbol in column col of record i.
func (a *Alignment) Residue(i, col int) byte { return a.recs[i].Seq[col] }

// Fragment appends columns [start, end) of record i to dst and
// returns the result. Writers use it to chop sequences into lines.
func (a *Alignment) Fragment(dst []byte, i, start, end int) []byte {
	return append(dst, a.recs[i].Seq[start:end]...)
}

// AppendSeq appends all of record i to dst and returns the result.
func (a *Alignment) AppendSeq(dst []byte, i int) []byte {
	return append(dst, a.recs[i].Seq...)
}

// IDs returns the identifiers in order.
func (a *Alignment) IDs() []string {
	ret := make([]string, len(a.recs))
	for i, r := range a.recs {
		ret[i] = r.ID
	}
	return ret
}

// Index returns the position of the record with identifier id, or -1.
func (a *Alignment) Index(id string) int {
	for i, r := range a.recs {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Annotation returns a piece of header information, such as the
// "program" which wrote a Clustal file.
func (a *Alignment) Annotation(key string) (string, bool) {
	v, ok := a.annot[key]
	return v, ok
}

// Annotations returns a copy of all the header information.
func (a *Alignment) Annotations() map[string]string {
	ret := make(map[string]string, len(a.annot))
	for k, v := range a.annot {
		ret[k] = v
	}
	return ret
}

// Equal says if two alignments have the same records in the same
// order. If withDesc is false, descriptions are not compared. Header
// annotations never are.
func (a *Alignment) Equal(b *Alignment, withDesc bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.recs {
		r, s := a.recs[i], b.recs[i]
		if r.ID != s.ID || !bytes.Equal(r.Seq, s.Seq) {
			return false
		}
		if withDesc && r.Desc != s.Desc {
			return false
		}
	}
	return true
}

// plural gives "1 row", "2 rows".
func plural(n int, s string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, s)
	}
	return fmt.Sprintf("%d %ss", n, s)
}

// String gives a short summary. Only the first ten rows and the
// first thirty columns are shown.
func (a *Alignment) String() string {
	const (
		maxRow = 10
		maxCol = 30
	)
	if a.Len() == 0 {
		return "No sequence in alignment"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Alignment with %s and %s\n", plural(a.Len(), "row"), plural(a.Width(), "column"))
	for i, r := range a.recs {
		if i == maxRow {
			b.WriteString("...\n")
			break
		}
		s := r.Seq
		if len(s) > maxCol {
			fmt.Fprintf(&b, "%s\t%s...\n", r.ID, s[:maxCol])
		} else {
			fmt.Fprintf(&b, "%s\t%s\n", r.ID, s)
		}
	}
	return b.String()
}
