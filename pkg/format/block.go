package format

import (
	"bufio"

	"github.com/andrew-torda/msaconv/pkg/msa"
)

// blockLayout says how to write interleaved blocks. Names are
// left justified in a column idCol wide, then come width residues.
// If group is more than zero, a space goes after every group
// residues, as in MSF.
type blockLayout struct {
	idCol int
	width int
	group int
}

// afterBlock is called once a block is written, with the columns it
// covered. Clustal uses it for the conservation line.
type afterBlock func(bw *bufio.Writer, start, end int)

// write lays out all the blocks, with one blank line between them.
// An alignment with sequences but no columns gets one block of bare
// names, so the names are not lost.
func (l blockLayout) write(bw *bufio.Writer, a *msa.Alignment, after afterBlock) {
	if a.Len() == 0 {
		return
	}
	n := a.Width()
	var frag []byte
	for start := 0; ; start += l.width {
		end := min(start+l.width, n)
		if start > 0 {
			bw.WriteByte('\n')
		}
		for i := 0; i < a.Len(); i++ {
			id := a.ID(i)
			bw.WriteString(id)
			if start == end {
				bw.WriteByte('\n')
				continue
			}
			for j := len(id); j < l.idCol; j++ {
				bw.WriteByte(' ')
			}
			frag = a.Fragment(frag[:0], i, start, end)
			l.writeFrag(bw, frag)
			bw.WriteByte('\n')
		}
		if after != nil {
			after(bw, start, end)
		}
		if end >= n {
			break
		}
	}
}

func (l blockLayout) writeFrag(bw *bufio.Writer, frag []byte) {
	if l.group <= 0 {
		bw.Write(frag)
		return
	}
	for len(frag) > l.group {
		bw.Write(frag[:l.group])
		bw.WriteByte(' ')
		frag = frag[l.group:]
	}
	bw.Write(frag)
}
