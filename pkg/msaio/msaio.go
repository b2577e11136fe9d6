// Package msaio is the way in for callers. It puts together format
// detection, the parsers, validation and the writers.
//
// Every call works on its own data, so calls may run in parallel.
// An error always means no alignment comes back.
package msaio

import (
	"bytes"
	"io"

	"github.com/andrew-torda/msaconv/pkg/format"
	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// Source is what Parse reads from. A *linesrc.Source is one.
type Source interface {
	linesrc.Lines
	linesrc.Peeker
}

type codec struct {
	format.Parser
	format.Writer
}

var codecs = map[format.Kind]codec{
	format.FastaAlignment: {format.FastaFmt{}, format.FastaFmt{}},
	format.Clustal:        {format.ClustalFmt{}, format.ClustalFmt{}},
	format.Stockholm:      {format.StockholmFmt{}, format.StockholmFmt{}},
	format.Msf:            {format.MsfFmt{}, format.MsfFmt{}},
}

func lookup(k format.Kind) (codec, error) {
	c, ok := codecs[k]
	if !ok {
		return codec{}, format.ErrUnknownFormat
	}
	return c, nil
}

// Detect guesses the format without using up any input.
func Detect(src linesrc.Peeker) format.Kind { return format.Detect(src) }

// Parse reads one alignment. If kind is format.Unknown, the format
// is detected first. Any printable symbol is accepted as a residue.
func Parse(src Source, kind format.Kind) (*msa.Alignment, error) {
	return ParseWith(src, kind, nil)
}

// ParseWith is Parse, but with the caller's validator, which says
// what alphabet is allowed. v may be nil.
func ParseWith(src Source, kind format.Kind, v *msa.Validator) (*msa.Alignment, error) {
	if kind == format.Unknown {
		kind = format.Detect(src)
	}
	c, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	a, err := c.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := v.Check(a); err != nil {
		return nil, err
	}
	return a, nil
}

// ParseBytes is Parse for input already in memory.
func ParseBytes(b []byte, kind format.Kind) (*msa.Alignment, error) {
	return Parse(linesrc.FromBytes(b), kind)
}

// WriteTo checks the alignment and then writes it in the given format.
func WriteTo(w io.Writer, a *msa.Alignment, kind format.Kind, opts format.WriteOptions) error {
	c, err := lookup(kind)
	if err != nil {
		return err
	}
	if err := msa.Check(a); err != nil {
		return err
	}
	return c.Write(w, a, opts)
}

// Write is WriteTo, but gives back the text.
func Write(a *msa.Alignment, kind format.Kind, opts format.WriteOptions) ([]byte, error) {
	var b bytes.Buffer
	if err := WriteTo(&b, a, kind, opts); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
