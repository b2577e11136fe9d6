// Package linesrc feeds lines of text to the alignment readers.
// It is a wrapper around bufio.Scanner that counts lines, so error
// messages can say where things went wrong, and that can look ahead
// without consuming anything. The format detector peeks, then the
// chosen reader starts again from the first line.
package linesrc

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// maxLine is the longest line we accept. Unwrapped Stockholm files
// can have very long lines.
const maxLine = 64 * 1024 * 1024

// Lines is what a reader needs. Next returns the next line without
// its line terminator. The slice is only valid until the next call.
// Line is the number (from 1) of the line last returned by Next.
// Err is the first read error, if any, once Next has returned false.
type Lines interface {
	Next() ([]byte, bool)
	Line() int
	Err() error
}

// Peeker can show the first meaningful lines of input without
// consuming them.
type Peeker interface {
	Peek(n int) [][]byte
}

type aheadLine struct {
	b []byte
	n int
}

// Source implements Lines and Peeker.
// It is not safe to share a Source between goroutines.
type Source struct {
	scanner *bufio.Scanner
	ahead   []aheadLine // lines read by Peek, but not yet by Next
	nRead   int         // number of lines taken from the scanner
	last    int         // number of the line last returned by Next
	eof     bool
	err     error
}

// New returns a Source reading from r.
func New(r io.Reader) *Source {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), maxLine)
	return &Source{scanner: s}
}

// FromBytes returns a Source reading from a byte slice, such as a
// memory mapped file.
func FromBytes(b []byte) *Source { return New(bytes.NewReader(b)) }

// FromLines returns a Source which will give back each of lines.
func FromLines(lines ...string) *Source {
	return New(strings.NewReader(strings.Join(lines, "\n")))
}

// scan is a wrapper around the library Scan(). It adds the
// line counter and remembers errors.
func (s *Source) scan() bool {
	if s.eof {
		return false
	}
	if !s.scanner.Scan() {
		s.eof = true
		s.err = s.scanner.Err()
		return false
	}
	s.nRead++
	return true
}

// Next returns the next line.
func (s *Source) Next() ([]byte, bool) {
	if len(s.ahead) > 0 {
		l := s.ahead[0]
		s.ahead = s.ahead[1:]
		s.last = l.n
		return l.b, true
	}
	if !s.scan() {
		return nil, false
	}
	s.last = s.nRead
	return s.scanner.Bytes(), true
}

// Line returns the number of the last line given out by Next.
func (s *Source) Line() int { return s.last }

// Err returns the read error which stopped us. io.EOF is not an error.
func (s *Source) Err() error { return s.err }

// Peek returns up to n lines which are not blank, starting from the
// current position. Nothing is consumed. The slices belong to the
// Source and must not be changed.
func (s *Source) Peek(n int) [][]byte {
	var ret [][]byte
	for i := 0; len(ret) < n; i++ {
		if i == len(s.ahead) {
			if !s.scan() {
				break
			}
			b := append([]byte(nil), s.scanner.Bytes()...)
			s.ahead = append(s.ahead, aheadLine{b: b, n: s.nRead})
		}
		if b := s.ahead[i].b; !Blank(b) {
			ret = append(ret, b)
		}
	}
	return ret
}

// Blank says if a line has nothing but white space.
func Blank(b []byte) bool { return len(bytes.TrimSpace(b)) == 0 }
