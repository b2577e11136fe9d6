// Package format reads and writes the alignment file formats:
// aligned fasta, Clustal, Stockholm and MSF.
//
// Each format is a type with a Parse and a Write method. Parsers
// take lines from a linesrc.Lines and build an msa.Alignment. They
// do not validate the result beyond what the grammar needs. Writers
// take an alignment which has been validated and lay it out.
// Everything here works on one call's data. There is no shared
// state, so different alignments can be handled in parallel.
package format

import (
	"errors"
	"io"
	"strings"

	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// Kind is one of the formats we know about.
type Kind byte

const (
	Unknown Kind = iota
	FastaAlignment
	Clustal
	Stockholm
	Msf
)

// ErrUnknownFormat is returned when we cannot tell what format
// some input is in, or are asked for a format we do not have.
var ErrUnknownFormat = errors.New("unknown alignment format")

func (k Kind) String() string {
	switch k {
	case FastaAlignment:
		return "fasta"
	case Clustal:
		return "clustal"
	case Stockholm:
		return "stockholm"
	case Msf:
		return "msf"
	}
	return "unknown"
}

// ParseKind turns a name or file extension into a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "fasta", "fa", "afa", "fas", "mfa":
		return FastaAlignment, nil
	case "clustal", "aln", "clw":
		return Clustal, nil
	case "stockholm", "sto", "sth", "stk":
		return Stockholm, nil
	case "msf", "gcg":
		return Msf, nil
	}
	return Unknown, ErrUnknownFormat
}

// Parser reads one alignment.
type Parser interface {
	Parse(src linesrc.Lines) (*msa.Alignment, error)
}

// Writer writes one alignment.
type Writer interface {
	Write(w io.Writer, a *msa.Alignment, opts WriteOptions) error
}

// WriteOptions controls the layout of output.
// WrapWidth is the number of residues per line (per block for the
// interleaved formats). Zero or less means the format's usual width.
// EmitDescriptions only matters for formats that can hold them.
// Consensus adds a conservation line under Clustal blocks.
type WriteOptions struct {
	WrapWidth        int
	EmitDescriptions bool
	Consensus        bool
}

// Usual widths for each format.
const (
	FastaWidth     = 60
	ClustalWidth   = 60
	StockholmWidth = 80
	MsfWidth       = 50
)

func (o WriteOptions) width(dflt int) int {
	if o.WrapWidth <= 0 {
		return dflt
	}
	return o.WrapWidth
}

// maxIDLen is the length of the longest identifier.
func maxIDLen(a *msa.Alignment) int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		if l := len(a.ID(i)); l > n {
			n = l
		}
	}
	return n
}
