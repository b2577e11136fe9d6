package format_test

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/andrew-torda/msaconv/pkg/format"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

const clustalIn = `CLUSTAL W (1.83) multiple sequence alignment


seq1      ACGT--AC 6
seq2      ACGTTTAC 8
          ****  **

seq1      GG 8
seq2      G- 9
          *
`

func TestClustalParse(t *testing.T) {
	a, err := rdParse(ClustalFmt{}, clustalIn)
	if err != nil {
		t.Fatal(err)
	}
	want := msa.New([]msa.Record{
		{ID: "seq1", Seq: []byte("ACGT--ACGG")},
		{ID: "seq2", Seq: []byte("ACGTTTACG-")},
	}, nil)
	if !a.Equal(want, true) {
		t.Fatal("got\n", a)
	}
	if p, _ := a.Annotation("program"); p != "CLUSTAL" {
		t.Fatal("program got", p)
	}
	if v, _ := a.Annotation("version"); v != "1.83" {
		t.Fatal("version got", v)
	}
}

func TestClustalErrors(t *testing.T) {
	const banner = "CLUSTAL W multiple sequence alignment\n\n"
	tests := []struct {
		in   string
		want Reason
		line int
	}{
		{"", EmptyInput, 0},
		{"seq1 ACGT\n", MissingBanner, 1},
		{banner + "seq1 AC\nseq2 AC\n\nseq3 AC\n", BlockMembership, 6},
		{banner + "seq1 ACGT\nseq2 ACG\n", FragmentLength, 4},
		{banner + "seq1 AC GT x\n", MalformedLine, 3},
		{banner + "seq1 AC x\n", MalformedLine, 3},
		{banner + "seq1 AC\nseq2 AC\n\nseq1 GT\n", FragmentLength, 6},
	}
	for i, tt := range tests {
		_, err := rdParse(ClustalFmt{}, tt.in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("test %d wanted ParseError, got %v", i, err)
		}
		if pe.Reason != tt.want || pe.Line != tt.line {
			t.Fatalf("test %d got %s at line %d, want %s at %d", i, pe.Reason, pe.Line, tt.want, tt.line)
		}
	}
}

func TestClustalDupInBlock(t *testing.T) {
	in := "CLUSTAL\n\nseq1 AC\nseq1 AC\n"
	if _, err := rdParse(ClustalFmt{}, in); valKind(err) != msa.DuplicateID {
		t.Fatal("wanted duplicate identifier, got", err)
	}
}

func TestClustalWrite(t *testing.T) {
	a := msa.New([]msa.Record{
		{ID: "seq1", Seq: []byte("ACGT--AC")},
		{ID: "seq2", Seq: []byte("ACGTTTAC")},
	}, nil)
	var b bytes.Buffer
	if err := (ClustalFmt{}).Write(&b, a, WriteOptions{WrapWidth: 4}); err != nil {
		t.Fatal(err)
	}
	want := "CLUSTAL W multiple sequence alignment\n\n\n" +
		"seq1      ACGT\nseq2      ACGT\n\n" +
		"seq1      --AC\nseq2      TTAC\n"
	if b.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", b.String(), want)
	}

	b.Reset()
	if err := (ClustalFmt{}).Write(&b, a, WriteOptions{Consensus: true}); err != nil {
		t.Fatal(err)
	}
	want = "CLUSTAL W multiple sequence alignment\n\n\n" +
		"seq1      ACGT--AC\nseq2      ACGTTTAC\n" +
		"          ****  **\n"
	if b.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", b.String(), want)
	}
	back, err := rdParse(ClustalFmt{}, b.String())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(a, false) {
		t.Fatal("consensus line got into the sequences\n", back)
	}
}
