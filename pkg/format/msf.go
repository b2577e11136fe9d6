// Reader and writer for GCG MSF files.

package format

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// MsfFmt is the GCG multiple sequence format:
//  !!NA_MULTIPLE_ALIGNMENT 1.0
//
//   x.msf  MSF: 8  Type: N  Check: 1527  ..
//
//   Name: seq1  Len: 8  Check: 9012  Weight: 1.00
//   Name: seq2  Len: 8  Check: 2515  Weight: 1.00
//
//  //
//
//  seq1  ACGT..AC
//  seq2  ACGTTTAC
// Check is used for the checksums. If it is nil, we use GCG.
type MsfFmt struct {
	Check Checksum
}

const (
	msfPad      = 2
	msfGroup    = 10
	msfDfltName = "msaconv.msf"
)

var nameToken = []byte("Name:")

func (m MsfFmt) checksum() Checksum {
	if m.Check == nil {
		return GCG
	}
	return m.Check
}

// msfName is what a Name: line in the header told us.
type msfName struct {
	id       string
	length   int
	check    int
	hasCheck bool
	line     int
	text     string
}

// msfHeader is everything before the "//".
type msfHeader struct {
	seenMSF  bool
	name     string
	typ      string
	length   int
	check    int
	hasCheck bool
	line     int
	text     string
	names    []msfName
}

// valueAfter returns the token after key, so for "Len: 8", it
// gives "8". ok is false if key is missing or the last token.
func valueAfter(f [][]byte, key string) (val []byte, ok bool) {
	for i := 0; i < len(f)-1; i++ {
		if string(f[i]) == key {
			return f[i+1], true
		}
	}
	return nil, false
}

// intAfter is valueAfter for numbers. present says the key was there.
func intAfter(f [][]byte, key string) (n int, present bool, err error) {
	v, ok := valueAfter(f, key)
	if !ok {
		return 0, false, nil
	}
	n, err = strconv.Atoi(string(v))
	return n, true, err
}

// allInts says if every field is a number. This is how we
// recognise the position rulers some programs put over blocks.
func allInts(f [][]byte) bool {
	for _, b := range f {
		if !isInt(b) {
			return false
		}
	}
	return true
}

// isRuler says if a body line is only column numbers. A ruler has
// one or two numbers, start and end of the block. Longer all-number
// lines are rulers if they do not start with a sequence name. So for
// a sequence called "1", a line "1 50" is a ruler, not residues.
func isRuler(f [][]byte, il *interleaver) bool {
	if !allInts(f) {
		return false
	}
	if len(f) <= 2 {
		return true
	}
	_, known := il.ndx[string(f[0])]
	return !known
}

// msfLine picks apart the line with MSF: on it.
func (h *msfHeader) msfLine(f [][]byte, src linesrc.Lines, line []byte) error {
	if h.seenMSF {
		return perr(Msf, src, BadHeader, line, "second MSF: line")
	}
	h.seenMSF = true
	h.line, h.text = src.Line(), firstPart(line)
	for i, b := range f {
		if bytes.Equal(b, msfToken) && i > 0 {
			h.name = string(f[i-1])
		}
	}
	var ok bool
	var err error
	if h.length, ok, err = intAfter(f, "MSF:"); !ok || err != nil {
		return perr(Msf, src, BadHeader, line, "no length after MSF:")
	}
	if t, ok := valueAfter(f, "Type:"); ok {
		h.typ = string(t)
	}
	if h.check, h.hasCheck, err = intAfter(f, "Check:"); err != nil {
		return perr(Msf, src, BadHeader, line, "Check: is not a number")
	}
	return nil
}

// nameLine picks apart a Name: line.
func (h *msfHeader) nameLine(f [][]byte, src linesrc.Lines, line []byte) error {
	id, ok := valueAfter(f, "Name:")
	if !ok {
		return perr(Msf, src, BadHeader, line, "no name after Name:")
	}
	n := msfName{id: string(id), line: src.Line(), text: firstPart(line)}
	var err error
	if n.length, ok, err = intAfter(f, "Len:"); !ok || err != nil {
		return perr(Msf, src, BadHeader, line, "missing or broken Len:")
	}
	if n.check, n.hasCheck, err = intAfter(f, "Check:"); err != nil {
		return perr(Msf, src, BadHeader, line, "Check: is not a number")
	}
	h.names = append(h.names, n)
	return nil
}

// readHeader reads up to and including the "//" line. Lines which
// have neither MSF: nor Name: are free text and ignored.
func readHeader(src linesrc.Lines) (*msfHeader, error) {
	line, ok := nextMeaningful(src)
	if !ok {
		return nil, endErr(Msf, src, EmptyInput, "no MSF header")
	}
	h := &msfHeader{}
	for ; ok; line, ok = src.Next() {
		f := bytes.Fields(line)
		switch {
		case len(f) == 1 && bytes.Equal(f[0], endRecord):
			if !h.seenMSF {
				return nil, perr(Msf, src, BadHeader, line, "no MSF: line before //")
			}
			if len(h.names) == 0 {
				return nil, perr(Msf, src, BadHeader, line, "no Name: lines before //")
			}
			return h, nil
		case hasToken(line, msfToken):
			if err := h.msfLine(f, src, line); err != nil {
				return nil, err
			}
		case hasToken(line, nameToken):
			if err := h.nameLine(f, src, line); err != nil {
				return nil, err
			}
		}
	}
	return nil, endErr(Msf, src, Truncated, "end of input before // closing the header")
}

// verify compares the sequences we built with what the header
// promised.
func (h *msfHeader) verify(seqs [][]byte, check Checksum) error {
	checks := make([]int, len(seqs))
	for i, n := range h.names {
		s := seqs[i]
		if len(s) != n.length {
			return &ParseError{Format: Msf, Line: n.line, Reason: LengthMismatch, Text: n.text,
				Desc: fmt.Sprintf("\"%s\" has %d residues, header says %d", n.id, len(s), n.length)}
		}
		if len(s) != h.length {
			return &ParseError{Format: Msf, Line: h.line, Reason: LengthMismatch, Text: h.text,
				Desc: fmt.Sprintf("\"%s\" has %d residues, MSF: says %d", n.id, len(s), h.length)}
		}
		checks[i] = check(s)
		if n.hasCheck && checks[i] != n.check {
			return &ParseError{Format: Msf, Line: n.line, Reason: ChecksumMismatch, Text: n.text,
				Desc: fmt.Sprintf("\"%s\" checksum is %d, header says %d", n.id, checks[i], n.check)}
		}
	}
	if h.hasCheck {
		if sum := sumChecks(checks); sum != h.check {
			return &ParseError{Format: Msf, Line: h.line, Reason: ChecksumMismatch, Text: h.text,
				Desc: fmt.Sprintf("total checksum is %d, header says %d", sum, h.check)}
		}
	}
	return nil
}

// Parse reads the header, then the blocks. Fragments on a line may
// be split into groups by spaces. The header's name and type are
// kept as annotations "name" and "type".
func (m MsfFmt) Parse(src linesrc.Lines) (*msa.Alignment, error) {
	h, err := readHeader(src)
	if err != nil {
		return nil, err
	}
	il := newInterleaver(Msf)
	for _, n := range h.names {
		if !il.declare(n.id) {
			return nil, &msa.ValidationError{Kind: msa.DuplicateID, IDs: []string{n.id}}
		}
	}
	for line, ok := src.Next(); ok; line, ok = src.Next() {
		f := bytes.Fields(line)
		if len(f) == 0 {
			il.blank()
			continue
		}
		id := string(f[0])
		if isRuler(f, il) {
			continue
		}
		if err := il.add(id, bytes.Join(f[1:], nil), src, line); err != nil {
			return nil, err
		}
	}
	if err := readErr(Msf, src); err != nil {
		return nil, err
	}
	if err := il.checkWidths(src); err != nil {
		return nil, err
	}
	if err := h.verify(il.seqs, m.checksum()); err != nil {
		return nil, err
	}
	annot := make(map[string]string)
	if h.name != "" {
		annot["name"] = h.name
	}
	if h.typ != "" {
		annot["type"] = h.typ
	}
	return msa.New(il.records(nil), annot), nil
}

// Write regenerates the header from the alignment. Checksums are
// always computed afresh. The sequence type comes from looking at
// the residues.
func (m MsfFmt) Write(w io.Writer, a *msa.Alignment, opts WriteOptions) error {
	check := m.checksum()
	seqs := make([][]byte, a.Len())
	checks := make([]int, a.Len())
	for i := range seqs {
		seqs[i] = a.AppendSeq(nil, i)
		checks[i] = check(seqs[i])
	}
	banner, typ := "!!AA_MULTIPLE_ALIGNMENT", "P"
	if alphabet.Guess(seqs...).IsNtide() {
		banner, typ = "!!NA_MULTIPLE_ALIGNMENT", "N"
	}
	name, ok := a.Annotation("name")
	if !ok || name == "" {
		name = msfDfltName
	}
	idLen := maxIDLen(a)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s 1.0\n\n", banner)
	fmt.Fprintf(bw, " %s  MSF: %d  Type: %s  Check: %d  ..\n\n", name, a.Width(), typ, sumChecks(checks))
	for i := range seqs {
		fmt.Fprintf(bw, " Name: %-*s  Len: %d  Check: %d  Weight: 1.00\n", idLen, a.ID(i), len(seqs[i]), checks[i])
	}
	bw.WriteString("\n//\n")
	if a.Len() > 0 {
		bw.WriteByte('\n')
	}
	layout := blockLayout{idCol: idLen + msfPad, width: opts.width(MsfWidth), group: msfGroup}
	layout.write(bw, a, nil)
	return bw.Flush()
}
