package format_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/andrew-torda/msaconv/brokenio"
	. "github.com/andrew-torda/msaconv/pkg/format"
	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/msa"
	"github.com/andrew-torda/msaconv/pkg/randseq"
)

func TestFastaWrap(t *testing.T) {
	a, err := rdParse(FastaFmt{}, ">seq1\nACGT--AC\n>seq2\nACGTTTAC")
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 || a.Width() != 8 {
		t.Fatalf("got %d x %d", a.Len(), a.Width())
	}
	var b bytes.Buffer
	if err := (FastaFmt{}).Write(&b, a, WriteOptions{WrapWidth: 4}); err != nil {
		t.Fatal(err)
	}
	want := ">seq1\nACGT\n--AC\n>seq2\nACGT\nTTAC\n"
	if b.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", b.String(), want)
	}
}

func TestFastaDesc(t *testing.T) {
	in := ">seq1  first  one \nAC GT\n\n ac gt\n>seq2\nACGTACGT\n>seq3\n"
	a, err := rdParse(FastaFmt{}, in)
	if err != nil {
		t.Fatal(err)
	}
	if a.Desc(0) != "first  one" || a.Desc(1) != "" {
		t.Fatalf("descriptions \"%s\" \"%s\"", a.Desc(0), a.Desc(1))
	}
	if s := string(a.Record(0).Seq); s != "ACGTacgt" {
		t.Fatal("white space not removed or case changed", s)
	}
	if a.Record(2).Len() != 0 {
		t.Fatal("seq3 should be empty")
	}
	var b bytes.Buffer
	opts := WriteOptions{EmitDescriptions: true}
	if err := (FastaFmt{}).Write(&b, a, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), ">seq1 first  one\nACGTacgt\n>seq2\n") {
		t.Fatal("wrote\n", b.String())
	}
	b.Reset()
	(FastaFmt{}).Write(&b, a, WriteOptions{})
	if !strings.HasPrefix(b.String(), ">seq1\n") {
		t.Fatal("description written when not asked for\n", b.String())
	}
}

func TestFastaErrors(t *testing.T) {
	tests := []struct {
		in   string
		want Reason
		line int
	}{
		{"", EmptyInput, 0},
		{"\n\n", EmptyInput, 2},
		{"ACGT\n>seq1\nACGT\n", BodyBeforeHeader, 1},
		{">seq1\nACGT\n> \nACGT\n", BadHeader, 3},
	}
	for i, tt := range tests {
		_, err := rdParse(FastaFmt{}, tt.in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("test %d wanted ParseError, got %v", i, err)
		}
		if pe.Reason != tt.want || pe.Line != tt.line {
			t.Fatalf("test %d got %s at line %d, want %s at %d", i, pe.Reason, pe.Line, tt.want, tt.line)
		}
		if pe.Format != FastaAlignment {
			t.Fatal("wrong format in error", pe.Format)
		}
	}
}

// TestFastaDupID checks that repeated names get through the parser,
// but not the validator.
func TestFastaDupID(t *testing.T) {
	a, err := rdParse(FastaFmt{}, ">x\nAC\n>x\nGT\n")
	if err != nil {
		t.Fatal("parser should not check names", err)
	}
	err = msa.Check(a)
	if valKind(err) != msa.DuplicateID {
		t.Fatal("wanted duplicate identifier, got", err)
	}
}

func TestFastaReadFail(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(">seq1\nACGT\n>seq2\nACGT\n"), 1)
	rdr.SetFailAfter(11)
	_, err := FastaFmt{}.Parse(linesrc.New(rdr))
	if reason(err) != ReadFailed {
		t.Fatal("wanted read failure, got", err)
	}
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("underlying error lost", err)
	}
}

// TestFastaMessy reads sequences with random white space in them.
func TestFastaMessy(t *testing.T) {
	var b bytes.Buffer
	args := randseq.RandSeqArgs{Iseed: 7, Wrtr: &b, Cmmt: "random", Nseq: 40, Len: 300}
	if err := randseq.WriteMessy(&args); err != nil {
		t.Fatal(err)
	}
	got, err := FastaFmt{}.Parse(linesrc.FromBytes(b.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if want := randseq.Alignment(&args); !want.Equal(got, true) {
		t.Fatal("messy fasta read back wrong")
	}
}

func TestErrorText(t *testing.T) {
	_, err := rdParse(FastaFmt{}, "ACGT\n")
	s := err.Error()
	if !strings.Contains(s, "line 1") || !strings.Contains(s, "Line starting with\nACGT") {
		t.Fatal("error message missing line", s)
	}
}

// TestFastaLineStart makes sure a '>' is never written at the start
// of a sequence line, where it would be read as a header.
func TestFastaLineStart(t *testing.T) {
	a := msa.New([]msa.Record{
		{ID: "a", Seq: []byte("A>CG")},
		{ID: "b", Seq: []byte("ACGT")},
	}, nil)
	var b bytes.Buffer
	err := FastaFmt{}.Write(&b, a, WriteOptions{WrapWidth: 1})
	var ve *msa.ValidationError
	if !errors.As(err, &ve) || ve.Kind != msa.BadSymbol || ve.Pos != 1 || ve.IDs[0] != "a" {
		t.Fatal("wanted bad symbol at 1 in a, got", err)
	}
	if b.Len() != 0 {
		t.Fatal("wrote something before failing:", b.String())
	}
	if err := (FastaFmt{}).Write(&b, a, WriteOptions{WrapWidth: 2}); err != nil {
		t.Fatal("'>' in the middle of a line rejected", err)
	}
	back, err := rdParse(FastaFmt{}, b.String())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(a, false) {
		t.Fatal("read back\n", back)
	}
}
