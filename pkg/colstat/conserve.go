package colstat

import (
	"strings"

	"github.com/andrew-torda/msaconv/pkg/common"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// Residue groups used by Clustal for the conservation line.
var (
	strongGroups = []string{"STA", "NEQK", "NHQK", "NDEQ", "QHRK", "MILV", "MILF", "HY", "FYW"}
	weakGroups   = []string{
		"CSA", "ATV", "SAG", "STNK", "STPA", "SGND",
		"SNDEQK", "NDEQHK", "NEQHRK", "FVLIM", "HFY"}
)

// Conservation symbols.
const (
	Identical = '*' // one residue, no gaps
	Strong    = ':' // all residues from one strong group
	Weak      = '.' // all residues from one weak group
	None      = ' '
)

// inGroup says if every residue in syms is in one of groups.
func inGroup(syms []byte, groups []string) bool {
	for _, g := range groups {
		all := true
		for _, s := range syms {
			if strings.IndexByte(g, s) == -1 {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// Conservation returns one symbol per column, as Clustal puts under
// each block. A column with any gap is not conserved.
func Conservation(a *msa.Alignment) []byte {
	c := Count(a)
	ret := make([]byte, c.Width())
	for col := range ret {
		ret[col] = None
		if c.Count(common.GapChar, col) > 0 {
			continue
		}
		syms := c.present(col)
		switch {
		case len(syms) == 1:
			ret[col] = Identical
		case inGroup(syms, strongGroups):
			ret[col] = Strong
		case inGroup(syms, weakGroups):
			ret[col] = Weak
		}
	}
	return ret
}
