// Reader and writer for Stockholm files.

package format

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// StockholmFmt is the Pfam/Rfam format:
//  # STOCKHOLM 1.0
//  #=GS seq1 DE a description
//  seq1  ACGT--AC
//  seq2  ACGTTTAC
//  //
// Lines starting with '#' are annotation. We only read the DE
// (description) lines. Everything else is skipped.
type StockholmFmt struct{}

const (
	stockholmVersion = "1.0"
	stockholmPad     = 2
)

var (
	endRecord = []byte("//")
	gsTag     = []byte("#=GS")
	deTag     = []byte("DE")
)

// cutField splits off the first word and returns it with the rest,
// which has leading white space removed.
func cutField(b []byte) (field, rest []byte) {
	b = bytes.TrimLeft(b, " \t")
	i := bytes.IndexAny(b, " \t")
	if i == -1 {
		return b, nil
	}
	return b[:i], bytes.TrimLeft(b[i:], " \t")
}

// gsDesc picks apart "#=GS name DE text". ok is false for any other
// #=GS line.
func gsDesc(line []byte) (id, desc string, ok bool) {
	name, rest := cutField(line[len(gsTag):])
	tag, rest := cutField(rest)
	if len(name) == 0 || !bytes.Equal(tag, deTag) {
		return "", "", false
	}
	return string(name), string(bytes.TrimSpace(rest)), true
}

// Parse reads one alignment, up to the "//" line. Anything after that
// is left unread. Several DE lines for one sequence are joined with
// a space.
func (StockholmFmt) Parse(src linesrc.Lines) (*msa.Alignment, error) {
	line, ok := nextMeaningful(src)
	if !ok {
		return nil, endErr(Stockholm, src, EmptyInput, "no STOCKHOLM banner")
	}
	if !bytes.HasPrefix(bytes.TrimLeft(line, " \t"), stockholmBanner) {
		return nil, perr(Stockholm, src, MissingBanner, line, "first line should be \"# STOCKHOLM 1.0\"")
	}
	var annot map[string]string
	if f := bytes.Fields(line); len(f) > 2 {
		annot = map[string]string{"version": string(f[2])}
	}

	il := newInterleaver(Stockholm)
	desc := make(map[string]string)
	finished := false
	for line, ok := src.Next(); ok; line, ok = src.Next() {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			il.blank()
			continue
		}
		if bytes.Equal(trimmed, endRecord) {
			finished = true
			break
		}
		if trimmed[0] == '#' {
			if bytes.HasPrefix(trimmed, gsTag) {
				if id, d, ok := gsDesc(trimmed); ok {
					if old := desc[id]; old != "" {
						d = old + " " + d
					}
					desc[id] = d
				}
			}
			continue
		}
		f := bytes.Fields(trimmed)
		var frag []byte
		switch len(f) {
		case 1:
		case 2:
			frag = f[1]
		default:
			return nil, perr(Stockholm, src, MalformedLine, line, "expected name and residues")
		}
		if err := il.add(string(f[0]), frag, src, line); err != nil {
			return nil, err
		}
	}
	if !finished {
		return nil, endErr(Stockholm, src, Truncated, "end of input before \"//\"")
	}
	if err := il.checkWidths(src); err != nil {
		return nil, err
	}
	return msa.New(il.records(desc), annot), nil
}

// checkStockholmIDs rejects names that would be read back as
// annotation or as the end of the record.
func checkStockholmIDs(a *msa.Alignment) error {
	for i := 0; i < a.Len(); i++ {
		if id := a.ID(i); strings.HasPrefix(id, "#") || strings.HasPrefix(id, "//") {
			return &msa.ValidationError{Kind: msa.BadID, IDs: []string{id}}
		}
	}
	return nil
}

// Write puts out the banner, descriptions if wanted, the blocks and
// the "//" terminator.
func (StockholmFmt) Write(w io.Writer, a *msa.Alignment, opts WriteOptions) error {
	if err := checkStockholmIDs(a); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# STOCKHOLM %s\n", stockholmVersion)
	idCol := maxIDLen(a) + stockholmPad
	if opts.EmitDescriptions {
		for i := 0; i < a.Len(); i++ {
			if d := strings.TrimSpace(a.Desc(i)); d != "" {
				fmt.Fprintf(bw, "#=GS %-*s DE %s\n", idCol-stockholmPad, a.ID(i), d)
			}
		}
	}
	if a.Len() > 0 {
		bw.WriteByte('\n')
	}
	layout := blockLayout{idCol: idCol, width: opts.width(StockholmWidth)}
	layout.write(bw, a, nil)
	bw.Write(endRecord)
	bw.WriteByte('\n')
	return bw.Flush()
}
