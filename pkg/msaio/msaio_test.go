package msaio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	"github.com/andrew-torda/msaconv/pkg/format"
	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
	. "github.com/andrew-torda/msaconv/pkg/msaio"
	"github.com/andrew-torda/msaconv/pkg/randseq"
)

func src(s string) *linesrc.Source { return linesrc.New(strings.NewReader(s)) }

func TestParseDetect(t *testing.T) {
	tests := []struct {
		in    string
		nseq  int
		width int
	}{
		{">a\nAC-T\n>b\nACGT\n", 2, 4},
		{"CLUSTAL\n\na AC-T\nb ACGT\n", 2, 4},
		{"# STOCKHOLM 1.0\na AC-T\nb ACGT\nc ACGA\n//\n", 3, 4},
		{" x MSF: 2 ..\n Name: a Len: 2\n//\na AC\n", 1, 2},
	}
	for i, tt := range tests {
		a, err := Parse(src(tt.in), format.Unknown)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if a.Len() != tt.nseq || a.Width() != tt.width {
			t.Fatalf("test %d got %d x %d", i, a.Len(), a.Width())
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"", "hello world\n"} {
		if _, err := Parse(src(in), format.Unknown); !errors.Is(err, format.ErrUnknownFormat) {
			t.Fatalf("\"%s\" got %v", in, err)
		}
	}
}

// TestParseValidates makes sure the facade does not hand back
// something the parser accepted but is not an alignment.
func TestParseValidates(t *testing.T) {
	tests := []struct {
		in   string
		want msa.Kind
	}{
		{">a\nACGT\n>b\nACG\n", msa.WidthMismatch},
		{">a\nACGT\n>a\nACGT\n", msa.DuplicateID},
		{">a\nAC GT\n>b\nAC\x01T\n", msa.BadSymbol},
	}
	for i, tt := range tests {
		a, err := Parse(src(tt.in), format.FastaAlignment)
		var ve *msa.ValidationError
		if !errors.As(err, &ve) || ve.Kind != tt.want {
			t.Fatalf("test %d got %v", i, err)
		}
		if a != nil {
			t.Fatal("got an alignment back with an error")
		}
	}
}

func TestParseWith(t *testing.T) {
	in := ">a\nACGU\n>b\nACGT\n"
	v := msa.Validator{Alphabet: alphabet.DNA}
	_, err := ParseWith(src(in), format.FastaAlignment, &v)
	var ve *msa.ValidationError
	if !errors.As(err, &ve) || ve.Kind != msa.BadSymbol || ve.Sym != 'U' || ve.IDs[0] != "a" {
		t.Fatal("wanted U rejected, got", err)
	}
	if _, err := ParseWith(src(in), format.FastaAlignment, nil); err != nil {
		t.Fatal("default alphabet should accept U", err)
	}
}

// TestConvert goes through every pair of formats.
func TestConvert(t *testing.T) {
	kinds := []format.Kind{format.FastaAlignment, format.Clustal, format.Stockholm, format.Msf}
	a := randseq.Alignment(&randseq.RandSeqArgs{Iseed: 2, Nseq: 7, Len: 83})
	for _, from := range kinds {
		b, err := Write(a, from, format.WriteOptions{WrapWidth: 20})
		if err != nil {
			t.Fatal(err)
		}
		mid, err := ParseBytes(b, format.Unknown)
		if err != nil {
			t.Fatalf("%s: %v", from, err)
		}
		for _, to := range kinds {
			b, err := Write(mid, to, format.WriteOptions{})
			if err != nil {
				t.Fatal(err)
			}
			back, err := ParseBytes(b, to)
			if err != nil {
				t.Fatalf("%s to %s: %v", from, to, err)
			}
			if !back.Equal(a, false) {
				t.Fatalf("%s to %s changed the alignment", from, to)
			}
		}
	}
}

func TestWriteChecks(t *testing.T) {
	bad := msa.New([]msa.Record{{ID: "a", Seq: []byte("AC")}, {ID: "b", Seq: []byte("A")}}, nil)
	var ve *msa.ValidationError
	if _, err := Write(bad, format.Clustal, format.WriteOptions{}); !errors.As(err, &ve) {
		t.Fatal("ragged alignment written", err)
	}
	for _, k := range []format.Kind{format.FastaAlignment, format.Stockholm} {
		brk := msa.New([]msa.Record{{ID: "a", Desc: "x\nGG", Seq: []byte("AC")}, {ID: "b", Seq: []byte("AC")}}, nil)
		_, err := Write(brk, k, format.WriteOptions{EmitDescriptions: true})
		if !errors.As(err, &ve) || ve.Kind != msa.BadDesc {
			t.Fatalf("%s: description with a line break written, %v", k, err)
		}
	}
	good := msa.New([]msa.Record{{ID: "a", Seq: []byte("AC")}}, nil)
	if _, err := Write(good, format.Unknown, format.WriteOptions{}); !errors.Is(err, format.ErrUnknownFormat) {
		t.Fatal("unknown format should fail", err)
	}
}
