package colstat

import (
	"math"

	"github.com/andrew-torda/msaconv/pkg/common"
)

// logBase is the base for the logarithms, so a column where every
// symbol is equally likely has entropy 1. It is the number of
// different symbols, but never less than 2.
func (c *Counts) logBase(gapsAreChar bool) int {
	n := len(c.revmap)
	if !gapsAreChar && c.mapping[common.GapChar] != badMap {
		n--
	}
	return max(n, 2)
}

// Entropy gives the sequence entropy of each column. If gapsAreChar
// is set, the gap is one more symbol. Otherwise gaps are ignored and
// the frequencies are of residues only. A column with nothing but
// gaps then has entropy zero.
func (c *Counts) Entropy(gapsAreChar bool) []float32 {
	logfac := 1.0 / math.Log(float64(c.logBase(gapsAreChar)))
	gapRow := int(c.mapping[common.GapChar])
	entropy := make([]float32, c.Width())
	for col := range entropy {
		total := float64(c.nseq)
		if !gapsAreChar {
			total -= float64(c.Count(common.GapChar, col))
		}
		if total == 0 {
			continue
		}
		sum := 0.0
		for row := range c.revmap {
			if row == gapRow && !gapsAreChar {
				continue
			}
			f := float64(c.counts.Mat[row][col]) / total
			if f == 0.0 {
				continue
			}
			sum += f * math.Log(f) * logfac
		}
		entropy[col] = float32(math.Abs(sum))
	}
	return entropy
}
