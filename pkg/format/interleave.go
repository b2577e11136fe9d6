package format

import (
	"fmt"

	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// interleaver collects the fragments of interleaved formats (Clustal,
// Stockholm, MSF). Each block has one fragment per sequence. The
// first block (or an MSF header) says which sequences exist and in
// what order. Fragment N for a name goes after fragment N-1 for the
// same name, wherever it was in its block.
// One interleaver lives for one parse.
type interleaver struct {
	kind     Kind
	ndx      map[string]int // name to position in seqs
	ids      []string       // names in order of first appearance
	seqs     [][]byte
	block    int             // current block, from 0
	inBlock  map[string]bool // names seen in current block
	fragLen  int             // length of fragments in current block, -1 if none yet
	blankSep bool            // a block separator has been seen
}

func newInterleaver(k Kind) *interleaver {
	return &interleaver{
		kind:    k,
		ndx:     make(map[string]int),
		inBlock: make(map[string]bool),
		fragLen: -1,
	}
}

// declare adds a name before any blocks have been read. MSF does this
// from its header. Afterwards, no new names are accepted.
func (il *interleaver) declare(id string) bool {
	if _, ok := il.ndx[id]; ok {
		return false
	}
	il.ndx[id] = len(il.ids)
	il.ids = append(il.ids, id)
	il.seqs = append(il.seqs, nil)
	il.block = 1
	return true
}

// blank is called for a separator line. Several in a row are the same
// as one. Blank lines before the first block mean nothing.
func (il *interleaver) blank() {
	if len(il.inBlock) > 0 {
		il.blankSep = true
	}
}

// add appends a fragment for a name. src and line are only used for
// error messages.
func (il *interleaver) add(id string, frag []byte, src linesrc.Lines, line []byte) error {
	if il.blankSep {
		il.block++
		il.blankSep = false
		il.fragLen = -1
		clear(il.inBlock)
	}
	if il.inBlock[id] {
		return &msa.ValidationError{Kind: msa.DuplicateID, IDs: []string{id}}
	}
	n, ok := il.ndx[id]
	if !ok {
		if il.block > 0 {
			desc := fmt.Sprintf("\"%s\" was not in the first block", id)
			if il.kind == Msf {
				desc = fmt.Sprintf("\"%s\" is not one of the names in the header", id)
			}
			return perr(il.kind, src, BlockMembership, line, desc)
		}
		n = len(il.ids)
		il.ndx[id] = n
		il.ids = append(il.ids, id)
		il.seqs = append(il.seqs, nil)
	}
	if il.fragLen == -1 {
		il.fragLen = len(frag)
	} else if len(frag) != il.fragLen {
		desc := fmt.Sprintf("fragment for \"%s\" has length %d, others in this block have %d", id, len(frag), il.fragLen)
		return perr(il.kind, src, FragmentLength, line, desc)
	}
	il.inBlock[id] = true
	il.seqs[n] = append(il.seqs[n], frag...)
	return nil
}

// checkWidths makes sure every sequence got the same number of
// columns, which is not the case if a name was left out of a block.
func (il *interleaver) checkWidths(src linesrc.Lines) error {
	for i := 1; i < len(il.seqs); i++ {
		if len(il.seqs[i]) != len(il.seqs[0]) {
			desc := fmt.Sprintf("\"%s\" has %d columns, \"%s\" has %d",
				il.ids[i], len(il.seqs[i]), il.ids[0], len(il.seqs[0]))
			return endErr(il.kind, src, FragmentLength, desc)
		}
	}
	return nil
}

// records hands back what has been collected. desc may be nil.
func (il *interleaver) records(desc map[string]string) []msa.Record {
	recs := make([]msa.Record, len(il.ids))
	for i, id := range il.ids {
		recs[i] = msa.Record{ID: id, Desc: desc[id], Seq: il.seqs[i]}
	}
	return recs
}
