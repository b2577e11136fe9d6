package format

import (
	"bytes"

	"github.com/andrew-torda/msaconv/pkg/linesrc"
)

// peekLines is how far we look. MSF files can have a few lines of
// free text before the line with "MSF:".
const peekLines = 20

// Programs whose output starts with a Clustal style banner.
var clustalBanners = []string{"CLUSTAL", "PROBCONS", "MUSCLE", "MSAPROBS", "Kalign"}

// clustalProgram returns the program named at the start of a
// Clustal banner, or "".
func clustalProgram(line []byte) string {
	for _, h := range clustalBanners {
		if bytes.HasPrefix(line, []byte(h)) {
			return h
		}
	}
	return ""
}

var (
	stockholmBanner = []byte("# STOCKHOLM")
	msfBanners      = [][]byte{[]byte("!!AA_MULTIPLE_ALIGNMENT"), []byte("!!NA_MULTIPLE_ALIGNMENT")}
	msfToken        = []byte("MSF:")
)

// hasToken says if tok is one of the white space separated words in line.
func hasToken(line, tok []byte) bool {
	for _, f := range bytes.Fields(line) {
		if bytes.Equal(f, tok) {
			return true
		}
	}
	return false
}

// Detect looks at the first lines of input and guesses the format.
// It only peeks, so the same source can then be given to a parser.
// It returns Unknown for empty input or something it does not
// recognise.
func Detect(p linesrc.Peeker) Kind {
	lines := p.Peek(peekLines)
	if len(lines) == 0 {
		return Unknown
	}
	if lines[0][0] == '>' { // the fasta reader wants it in the first column
		return FastaAlignment
	}
	first := bytes.TrimLeft(lines[0], " \t")
	switch {
	case clustalProgram(first) != "":
		return Clustal
	case bytes.HasPrefix(first, stockholmBanner):
		return Stockholm
	}
	for _, b := range msfBanners {
		if bytes.HasPrefix(first, b) {
			return Msf
		}
	}
	for _, l := range lines {
		if hasToken(l, msfToken) {
			return Msf
		}
	}
	return Unknown
}
