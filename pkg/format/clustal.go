// Reader and writer for Clustal (.aln) files.

package format

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/andrew-torda/msaconv/pkg/colstat"
	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// ClustalFmt is the format written by ClustalW and friends:
//  CLUSTAL W (1.83) multiple sequence alignment
//
//  seq1      ACGT--AC 6
//  seq2      ACGTTTAC 8
//            ****  **
// Blocks are separated by blank lines. The line under each block,
// which starts with white space, is the conservation line.
type ClustalFmt struct{}

const clustalBanner = "CLUSTAL W multiple sequence alignment"

// clustalPad is the gap between the longest name and the residues.
const clustalPad = 6

var versionRe = regexp.MustCompile(`(\d+(?:\.\d+)+)`)

func isInt(b []byte) bool {
	_, err := strconv.Atoi(string(b))
	return err == nil
}

// Parse reads the banner, then the blocks. The program name and
// version from the banner are kept as annotations "program" and
// "version".
func (ClustalFmt) Parse(src linesrc.Lines) (*msa.Alignment, error) {
	line, ok := nextMeaningful(src)
	if !ok {
		return nil, endErr(Clustal, src, EmptyInput, "no CLUSTAL banner")
	}
	prog := clustalProgram(bytes.TrimLeft(line, " \t"))
	if prog == "" {
		return nil, perr(Clustal, src, MissingBanner, line, "first line is not a CLUSTAL banner")
	}
	annot := map[string]string{"program": prog}
	if v := versionRe.FindSubmatch(line); v != nil {
		annot["version"] = string(v[1])
	}

	il := newInterleaver(Clustal)
	for line, ok := src.Next(); ok; line, ok = src.Next() {
		if linesrc.Blank(line) {
			il.blank()
			continue
		}
		if line[0] == ' ' || line[0] == '\t' { // conservation line
			continue
		}
		f := bytes.Fields(line)
		var frag []byte
		switch len(f) {
		case 1:
		case 2:
			frag = f[1]
		case 3:
			if !isInt(f[2]) {
				return nil, perr(Clustal, src, MalformedLine, line, "third field should be a residue count")
			}
			frag = f[1]
		default:
			return nil, perr(Clustal, src, MalformedLine, line, "expected name and residues")
		}
		if err := il.add(string(f[0]), frag, src, line); err != nil {
			return nil, err
		}
	}
	if err := readErr(Clustal, src); err != nil {
		return nil, err
	}
	if err := il.checkWidths(src); err != nil {
		return nil, err
	}
	return msa.New(il.records(nil), annot), nil
}

// Write puts out the banner and blocks. Names are padded so the
// residues line up. With opts.Consensus, each block gets a
// conservation line.
func (ClustalFmt) Write(w io.Writer, a *msa.Alignment, opts WriteOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n\n", clustalBanner)
	layout := blockLayout{idCol: maxIDLen(a) + clustalPad, width: opts.width(ClustalWidth)}
	var after afterBlock
	if opts.Consensus {
		cons := colstat.Conservation(a)
		after = func(bw *bufio.Writer, start, end int) {
			if start == end {
				return
			}
			l := make([]byte, layout.idCol, layout.idCol+end-start)
			for i := range l {
				l[i] = ' '
			}
			l = bytes.TrimRight(append(l, cons[start:end]...), " ")
			bw.Write(l)
			bw.WriteByte('\n')
		}
	}
	layout.write(bw, a, after)
	return bw.Flush()
}
