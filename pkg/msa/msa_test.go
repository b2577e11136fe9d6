package msa_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	. "github.com/andrew-torda/msaconv/pkg/msa"
)

func twoRec() []Record {
	return []Record{
		{ID: "seq1", Desc: "first one", Seq: []byte("ACGT--AC")},
		{ID: "seq2", Seq: []byte("ACGTTTAC")},
	}
}

func TestNew(t *testing.T) {
	recs := twoRec()
	a := New(recs, map[string]string{"program": "CLUSTAL"})
	if a.Len() != 2 || a.Width() != 8 {
		t.Fatalf("got %d rows %d cols, wanted 2 and 8", a.Len(), a.Width())
	}
	if diff := cmp.Diff(twoRec(), a.Records()); diff != "" {
		t.Fatal("records differ (-want +got)\n", diff)
	}
	recs[0].Seq[0] = 'x' // New must have copied
	if a.Residue(0, 0) != 'A' {
		t.Fatal("alignment changed when caller's slice changed")
	}
	r := a.Record(1)
	r.Seq[0] = 'x'
	if a.Residue(1, 0) != 'A' {
		t.Fatal("alignment changed through Record()")
	}
	if v, ok := a.Annotation("program"); !ok || v != "CLUSTAL" {
		t.Fatal("lost annotation, got", v)
	}
	if a.Index("seq2") != 1 || a.Index("seq3") != -1 {
		t.Fatal("Index broken")
	}
	if got := string(a.Fragment(nil, 0, 2, 6)); got != "GT--" {
		t.Fatal("fragment got", got)
	}
}

func TestEmpty(t *testing.T) {
	a := New(nil, nil)
	if a.Len() != 0 || a.Width() != 0 {
		t.Fatal("empty alignment has size")
	}
	if a.String() != "No sequence in alignment" {
		t.Fatal("empty string got", a.String())
	}
	if err := Check(a); err != nil {
		t.Fatal("empty alignment should be valid", err)
	}
}

func TestEqual(t *testing.T) {
	a := New(twoRec(), nil)
	recs := twoRec()
	recs[0].Desc = ""
	b := New(recs, nil)
	if !a.Equal(b, false) {
		t.Fatal("should be equal without descriptions")
	}
	if a.Equal(b, true) {
		t.Fatal("descriptions differ")
	}
	recs[1].Seq[3] = 'g'
	if New(recs, nil).Equal(a, false) {
		t.Fatal("case of residues matters")
	}
}

func TestString(t *testing.T) {
	a := New([]Record{{ID: "id1", Seq: []byte("ACG")}}, nil)
	if want := "Alignment with 1 row and 3 columns\nid1\tACG\n"; a.String() != want {
		t.Fatalf("got %q want %q", a.String(), want)
	}
	var recs []Record
	for i := 0; i < 12; i++ {
		recs = append(recs, Record{ID: string(rune('a' + i)), Seq: []byte(strings.Repeat("A", 31))})
	}
	s := New(recs, nil).String()
	if !strings.HasPrefix(s, "Alignment with 12 rows and 31 columns\n") {
		t.Fatal("bad header in", s)
	}
	if !strings.Contains(s, "a\t"+strings.Repeat("A", 30)+"...\n") {
		t.Fatal("long row not truncated", s)
	}
	if !strings.HasSuffix(s, "j\t"+strings.Repeat("A", 30)+"...\n...\n") {
		t.Fatal("more than 10 rows should end with ...", s)
	}
}

// TestCheck goes through each broken rule.
func TestCheck(t *testing.T) {
	tests := []struct {
		recs []Record
		alph *alphabet.Alphabet
		kind Kind
		id   string
	}{
		{[]Record{{ID: "a", Seq: []byte("AC")}, {ID: "b", Seq: []byte("ACG")}}, nil, WidthMismatch, "b"},
		{[]Record{{ID: "a", Seq: []byte("AC")}, {ID: "a", Seq: []byte("AG")}}, nil, DuplicateID, "a"},
		{[]Record{{ID: "", Seq: []byte("AC")}}, nil, BadID, ""},
		{[]Record{{ID: "a b", Seq: []byte("AC")}}, nil, BadID, "a b"},
		{[]Record{{ID: "a", Seq: []byte("A C")}}, nil, BadSymbol, "a"},
		{[]Record{{ID: "a", Seq: []byte("ACGU")}}, alphabet.DNA, BadSymbol, "a"},
		{[]Record{{ID: "a", Desc: "x\nGG", Seq: []byte("AC")}}, nil, BadDesc, "a"},
		{[]Record{{ID: "a", Seq: []byte("AC")}, {ID: "b", Desc: "y\r", Seq: []byte("AC")}}, nil, BadDesc, "b"},
	}
	for i, tt := range tests {
		v := Validator{Alphabet: tt.alph}
		err := v.Check(New(tt.recs, nil))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("test %d wanted a ValidationError, got %v", i, err)
		}
		if verr.Kind != tt.kind {
			t.Fatalf("test %d got %v wanted %v", i, verr.Kind, tt.kind)
		}
		if len(verr.IDs) != 1 || verr.IDs[0] != tt.id {
			t.Fatalf("test %d error names %q wanted %q", i, verr.IDs, tt.id)
		}
	}
}

func TestCheckDetails(t *testing.T) {
	a := New([]Record{{ID: "a", Seq: []byte("ACGT")}, {ID: "b", Seq: []byte("ACG")}}, nil)
	var verr *ValidationError
	if err := Check(a); !errors.As(err, &verr) || verr.Want != 4 || verr.Got != 3 {
		t.Fatal("wanted width 4 vs 3, got", err)
	}
	v := Validator{Alphabet: alphabet.DNA}
	a = New([]Record{{ID: "a", Seq: []byte("AC-GTu")}}, nil)
	if err := v.Check(a); !errors.As(err, &verr) || verr.Pos != 5 || verr.Sym != 'u' {
		t.Fatal("wanted bad u at 5, got", err)
	}
	if !strings.Contains(verr.Error(), "dna") {
		t.Fatal("message should name the alphabet:", verr.Error())
	}
	if err := v.Check(New(twoRec(), nil)); err != nil {
		t.Fatal("good DNA alignment rejected", err)
	}
}

func TestSquash(t *testing.T) {
	a := New([]Record{
		{ID: "ref", Desc: "d", Seq: []byte("A-C.G~T")},
		{ID: "s2", Seq: []byte("abcdefg")},
	}, map[string]string{"name": "x"})
	b, err := Squash(a, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{
		{ID: "ref", Desc: "d", Seq: []byte("ACGT")},
		{ID: "s2", Seq: []byte("aceg")},
	}
	if diff := cmp.Diff(want, b.Records()); diff != "" {
		t.Fatal("squash (-want +got)\n", diff)
	}
	if a.Width() != 7 {
		t.Fatal("squash changed the original")
	}
	if _, err := Squash(a, 2); err == nil {
		t.Fatal("reference out of range should fail")
	}
}
