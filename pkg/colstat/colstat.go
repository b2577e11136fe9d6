// 6 Apr 2020
// Package colstat does simple, common calculations on the columns
// of an alignment. It counts symbols per column and works out the
// Clustal style conservation line.
//
// Lower case is counted as upper case. All the gap symbols are
// counted together, under '-'.

package colstat

import (
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	"github.com/andrew-torda/msaconv/pkg/common"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

const (
	badMap = math.MaxUint8 // marks a symbol as not seen
)

// Counts holds the number of times each symbol turns up in each column.
// counts.Mat looks like [number_of_symbols][length_of_alignment]
type Counts struct {
	counts  *matrix.FMatrix2d
	mapping [256]uint8 // mapping['C'] tells me the row used for C
	revmap  []byte     // revmap[2] tells me the character in row 2
	nseq    int
}

// fold turns lower case to upper case and any gap into the one gap.
func fold(c byte) byte {
	switch {
	case 'a' <= c && c <= 'z':
		return c - ('a' - 'A')
	case alphabet.IsGap(c):
		return common.GapChar
	}
	return c
}

// Count goes through the alignment and tallies symbols.
func Count(a *msa.Alignment) *Counts {
	c := &Counts{nseq: a.Len()}
	var used [256]bool
	width := a.Width()
	for i := 0; i < a.Len(); i++ {
		for col := 0; col < width; col++ {
			used[fold(a.Residue(i, col))] = true
		}
	}
	for i := range c.mapping {
		c.mapping[i] = badMap
	}
	for s, u := range used {
		if u {
			c.mapping[s] = uint8(len(c.revmap))
			c.revmap = append(c.revmap, byte(s))
		}
	}
	c.counts = matrix.NewFMatrix2d(len(c.revmap), width)
	for i := 0; i < a.Len(); i++ {
		for col := 0; col < width; col++ {
			cmap := c.mapping[fold(a.Residue(i, col))]
			c.counts.Mat[cmap][col] += 1
		}
	}
	return c
}

// Syms returns the symbols that were seen, in byte order.
func (c *Counts) Syms() []byte { return append([]byte(nil), c.revmap...) }

// Width is the number of columns counted.
func (c *Counts) Width() int {
	if len(c.counts.Mat) == 0 {
		return 0
	}
	return len(c.counts.Mat[0])
}

// Count returns the number of times sym turns up in column col.
func (c *Counts) Count(sym byte, col int) float32 {
	m := c.mapping[fold(sym)]
	if m == badMap {
		return 0
	}
	return c.counts.Mat[m][col]
}

// GapFrac is the fraction of the column which is gap.
func (c *Counts) GapFrac(col int) float32 {
	if c.nseq == 0 {
		return 0
	}
	return c.Count(common.GapChar, col) / float32(c.nseq)
}

// Frac is the fraction of the residues (not gaps) in column col
// which are sym.
func (c *Counts) Frac(sym byte, col int) float32 {
	nres := float32(c.nseq) - c.Count(common.GapChar, col)
	if nres == 0 || alphabet.IsGap(sym) {
		return 0
	}
	return c.Count(sym, col) / nres
}

// present returns the residues (not gaps) seen in column col.
func (c *Counts) present(col int) []byte {
	var ret []byte
	for row, s := range c.revmap {
		if s != common.GapChar && c.counts.Mat[row][col] > 0 {
			ret = append(ret, s)
		}
	}
	return ret
}
