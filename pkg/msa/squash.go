// 29 April 2020

package msa

import (
	"fmt"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
)

// Squash returns a new alignment with only the columns where the
// reference sequence (record ref) is not a gap. Descriptions and
// header information are kept.
func Squash(a *Alignment, ref int) (*Alignment, error) {
	if ref < 0 || ref >= a.Len() {
		return nil, fmt.Errorf("reference sequence %d out of range, alignment has %d", ref+1, a.Len())
	}
	maskseq := a.recs[ref].Seq
	nfullseq := len(maskseq)
	mask := make([]bool, nfullseq)
	nkeep := 0
	for i, c := range maskseq {
		if !alphabet.IsGap(c) {
			mask[i] = true
			nkeep++
		}
	}
	const emsg = "length mismatch ref: %d seq \"%s\" len %d"
	recs := make([]Record, len(a.recs))
	for i, r := range a.recs {
		if len(r.Seq) != nfullseq {
			return nil, fmt.Errorf(emsg, nfullseq, r.ID, len(r.Seq))
		}
		b := make([]byte, 0, nkeep)
		for j, c := range r.Seq {
			if mask[j] {
				b = append(b, c)
			}
		}
		recs[i] = Record{ID: r.ID, Desc: r.Desc, Seq: b}
	}
	return &Alignment{recs: recs, annot: a.Annotations()}, nil
}
