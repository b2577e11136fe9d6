// Reader and writer for aligned fasta files.

package format

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
	"github.com/andrew-torda/msaconv/pkg/white"
)

const cmmtChar = '>' // and this introduces comments in fasta format

// FastaFmt is aligned fasta. Each record is a header line
//  >identifier description
// followed by any number of sequence lines.
type FastaFmt struct{}

// splitHeader takes the header without the ">" and returns the
// first word and the rest.
func splitHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	i := bytes.IndexAny(hdr, " \t")
	if i == -1 {
		return string(hdr), ""
	}
	return string(hdr[:i]), string(bytes.TrimSpace(hdr[i:]))
}

// Parse reads records until the end of input. White space in
// sequence lines is thrown away. A header with no sequence lines
// gives an empty sequence. Repeated names are not caught here, but
// by the validator.
func (FastaFmt) Parse(src linesrc.Lines) (*msa.Alignment, error) {
	var recs []msa.Record
	for line, ok := src.Next(); ok; line, ok = src.Next() {
		if len(line) > 0 && line[0] == cmmtChar {
			id, desc := splitHeader(line[1:])
			if id == "" {
				return nil, perr(FastaAlignment, src, BadHeader, line, "no identifier after '>'")
			}
			recs = append(recs, msa.Record{ID: id, Desc: desc})
			continue
		}
		if linesrc.Blank(line) {
			continue
		}
		if len(recs) == 0 {
			return nil, perr(FastaAlignment, src, BodyBeforeHeader, line, "expected a line starting with '>'")
		}
		r := &recs[len(recs)-1]
		n := len(r.Seq)
		r.Seq = append(r.Seq, line...)
		r.Seq = r.Seq[:n+len(white.Remove(r.Seq[n:]))]
	}
	if err := readErr(FastaAlignment, src); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, endErr(FastaAlignment, src, EmptyInput, "no sequences found")
	}
	return msa.New(recs, nil), nil
}

// checkLineStarts rejects a sequence with '>' where a wrapped line
// would begin, since it would come back as a header.
func checkLineStarts(a *msa.Alignment, cPerLine int) error {
	var s []byte
	for i := 0; i < a.Len(); i++ {
		s = a.AppendSeq(s[:0], i)
		for col := 0; col < len(s); col += cPerLine {
			if s[col] == cmmtChar {
				return &msa.ValidationError{
					Kind: msa.BadSymbol, IDs: []string{a.ID(i)},
					Pos: col, Sym: cmmtChar, Alphabet: "fasta",
				}
			}
		}
	}
	return nil
}

// Write puts out each record with its sequence wrapped. Nothing is
// written if a line would start with '>'.
func (FastaFmt) Write(w io.Writer, a *msa.Alignment, opts WriteOptions) error {
	cPerLine := opts.width(FastaWidth)
	if err := checkLineStarts(a, cPerLine); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	var s []byte
	for i := 0; i < a.Len(); i++ {
		bw.WriteByte(cmmtChar)
		bw.WriteString(a.ID(i))
		if desc := strings.TrimSpace(a.Desc(i)); opts.EmitDescriptions && desc != "" {
			bw.WriteByte(' ')
			bw.WriteString(desc)
		}
		bw.WriteByte('\n')
		s = a.AppendSeq(s[:0], i)
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			bw.Write(s[:cPerLine])
			bw.WriteByte('\n')
		}
		if len(s) > 0 {
			bw.Write(s)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
