// An error implementation that saves the line number and the
// line we were trying to read.

package format

import (
	"strconv"

	"github.com/andrew-torda/msaconv/pkg/linesrc"
)

const maxMsgLen = 70

// Reason says what kind of grammar problem a ParseError is.
type Reason byte

const (
	EmptyInput       Reason = iota + 1 // nothing to read
	MissingBanner                      // first line is not what the format needs
	BadHeader                          // header lines broken (fasta, MSF)
	BodyBeforeHeader                   // sequence before any fasta header
	MalformedLine                      // a line we cannot split into name and residues
	BlockMembership                    // name appears that was not in the first block / header
	FragmentLength                     // fragments in a block have different lengths
	Truncated                          // input ended before the record terminator
	LengthMismatch                     // sequence length differs from the header
	ChecksumMismatch                   // checksum differs from the header
	ReadFailed                         // the line source had a read error
)

var reasonStr = map[Reason]string{
	EmptyInput:       "empty input",
	MissingBanner:    "missing banner",
	BadHeader:        "bad header",
	BodyBeforeHeader: "sequence before header",
	MalformedLine:    "malformed line",
	BlockMembership:  "inconsistent block membership",
	FragmentLength:   "inconsistent fragment length",
	Truncated:        "truncated record",
	LengthMismatch:   "length mismatch",
	ChecksumMismatch: "checksum mismatch",
	ReadFailed:       "read failed",
}

func (r Reason) String() string {
	if s, ok := reasonStr[r]; ok {
		return s
	}
	return "unknown reason"
}

// ParseError is returned when input does not follow the grammar of
// the format. Line is the number of the line which provoked the
// error, from 1. For problems found at the end of input, it is the
// number of the last line. Text is the start of the offending line.
// Err is set if the problem was an underlying read error.
type ParseError struct {
	Format Kind
	Line   int
	Reason Reason
	Desc   string
	Text   string
	Err    error
}

func firstPart(b []byte) string {
	l := len(b)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return string(b[:l])
}

// Error takes what is known about the problem and returns a
// single string. This includes the number of the line and the
// start of it, if we have it.
func (e *ParseError) Error() string {
	errmsg := e.Format.String()
	if e.Line != 0 {
		errmsg += " line " + strconv.Itoa(e.Line)
	}
	errmsg += ": " + e.Reason.String()
	if e.Desc != "" {
		errmsg += ": " + e.Desc
	}
	if e.Err != nil {
		errmsg += ": " + e.Err.Error()
	}
	if e.Text != "" {
		errmsg += "\nLine starting with\n" + e.Text
	}
	return errmsg
}

func (e *ParseError) Unwrap() error { return e.Err }

// perr builds a ParseError for the line just read from src.
// line may be nil if there is no line to show.
func perr(k Kind, src linesrc.Lines, r Reason, line []byte, desc string) *ParseError {
	return &ParseError{Format: k, Line: src.Line(), Reason: r, Desc: desc, Text: firstPart(line)}
}

// endErr is for problems found after the last line. If the source
// stopped because of a read error, that is what we report.
func endErr(k Kind, src linesrc.Lines, r Reason, desc string) *ParseError {
	if err := src.Err(); err != nil {
		return &ParseError{Format: k, Line: src.Line(), Reason: ReadFailed, Err: err}
	}
	return &ParseError{Format: k, Line: src.Line(), Reason: r, Desc: desc}
}

// readErr checks if the source stopped early because of a read error.
func readErr(k Kind, src linesrc.Lines) error {
	if err := src.Err(); err != nil {
		return &ParseError{Format: k, Line: src.Line(), Reason: ReadFailed, Err: err}
	}
	return nil
}

// nextMeaningful skips blank lines. It is used to find banners.
func nextMeaningful(src linesrc.Lines) ([]byte, bool) {
	for line, ok := src.Next(); ok; line, ok = src.Next() {
		if !linesrc.Blank(line) {
			return line, true
		}
	}
	return nil, false
}
