package colstat_test

import (
	"testing"

	"github.com/andrew-torda/msaconv/pkg/colstat"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

func mkAln(seqs ...string) *msa.Alignment {
	var recs []msa.Record
	for i, s := range seqs {
		recs = append(recs, msa.Record{ID: string(rune('a' + i)), Seq: []byte(s)})
	}
	return msa.New(recs, nil)
}

// roughEql says if two numbers are roughly the same
func roughEql(a, b float32) bool {
	const eps float32 = 0.01
	d := a - b
	return d < eps && d > -eps
}

func TestCount(t *testing.T) {
	a := mkAln("AC-a", "AC.g", "aGTa", "ACT~")
	c := colstat.Count(a)
	if c.Width() != 4 {
		t.Fatal("width", c.Width())
	}
	if string(c.Syms()) != "-ACGT" {
		t.Fatalf("symbols got \"%s\"", c.Syms())
	}
	tests := []struct {
		sym   byte
		col   int
		count float32
	}{
		{'A', 0, 4},
		{'a', 0, 4},
		{'C', 1, 3},
		{'G', 1, 1},
		{'-', 2, 2},
		{'.', 2, 2},
		{'-', 3, 1},
		{'W', 3, 0},
	}
	for _, tt := range tests {
		if got := c.Count(tt.sym, tt.col); got != tt.count {
			t.Fatalf("count of %c in column %d got %g want %g", tt.sym, tt.col, got, tt.count)
		}
	}
	if f := c.GapFrac(2); !roughEql(f, 0.5) {
		t.Fatal("gap fraction column 2", f)
	}
	if f := c.Frac('T', 2); !roughEql(f, 1) {
		t.Fatal("T fraction of residues in column 2", f)
	}
	if f := c.Frac('A', 3); !roughEql(f, 2./3.) {
		t.Fatal("A fraction in column 3", f)
	}
}

func TestCountEmpty(t *testing.T) {
	c := colstat.Count(msa.New(nil, nil))
	if c.Width() != 0 || len(c.Syms()) != 0 {
		t.Fatal("empty alignment has counts")
	}
}

func TestConservation(t *testing.T) {
	a := mkAln(
		"WSNAG-",
		"WTEAGL",
		"wAQVDL",
	)
	// W identical, STA strong, NEQ strong, AV weak (ATV),
	// GD weak (SGND), gap.
	want := "*::.. "
	if got := string(colstat.Conservation(a)); got != want {
		t.Fatalf("got \"%s\" want \"%s\"", got, want)
	}
}

func TestEntropy(t *testing.T) {
	a := mkAln(
		"AAC-",
		"ACG-",
		"AGT-",
		"A-A-",
	)
	c := colstat.Count(a)
	// Without gaps, 4 residues (ACGT) so logs are base 4.
	// col 1 has A, C, G: log4(3). col 2 is all different: 1.
	want := []float32{0, 0.792, 1, 0}
	got := c.Entropy(false)
	for i := range want {
		if !roughEql(got[i], want[i]) {
			t.Fatalf("no gaps: col %d got %g want %g", i, got[i], want[i])
		}
	}
	// With gaps, five symbols and col 1 is A C G -.
	if got := c.Entropy(true); !roughEql(got[1], 0.861) || !roughEql(got[3], 0) {
		t.Fatal("gaps as symbol got", got)
	}
}
