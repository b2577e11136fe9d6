// 31 July 2020

// Package randseq makes random alignments. They are for testing
// readers and writers. Identifiers are a prefix followed by the
// number of the sequence, so they are unique.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/msaconv/pkg/msa"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
	dfltPfx   = "s"
)

// RandSeqArgs is the set of arguments passed to the main functions
type RandSeqArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where WriteMessy writes to
	Prefix string    // identifiers are Prefix1, Prefix2, ...
	Cmmt   string    // Description for the sequences
	Nseq   int       // number of sequences
	Len    int       // Length of sequences, the width of the alignment
	NoGap  bool      // Do not add gaps
}

var protLetters = []byte{'a', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y'}

// letters gives the symbols to draw from. With gaps, about one
// symbol in 81 is a gap.
func letters(noGap bool) []byte {
	l := append([]byte(nil), protLetters...)
	if !noGap {
		l = append(l, l...)
		l = append(l, l...)
		l = append(l, '-')
	}
	return l
}

// getseq returns a byte slice with a random sequence in it. Some
// space is left at the end for addspace.
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := int32(len(letters))
	for i := 0; i < seqlen; i++ {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

func (args *RandSeqArgs) id(i int) string {
	pfx := args.Prefix
	if pfx == "" {
		pfx = dfltPfx
	}
	return fmt.Sprintf("%s%d", pfx, i+1)
}

// Alignment makes an alignment of args.Nseq sequences, all
// args.Len long. The same seed gives the same alignment.
func Alignment(args *RandSeqArgs) *msa.Alignment {
	rnd := rand.New(rand.NewSource(args.Iseed))
	let := letters(args.NoGap)
	recs := make([]msa.Record, args.Nseq)
	for i := range recs {
		recs[i] = msa.Record{ID: args.id(i), Desc: args.Cmmt, Seq: getseq(args.Len, let, rnd)}
	}
	return msa.New(recs, nil)
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	coin := spacernd.Int31n(2)
	nNL := 0 // Number of new lines to add
	if coin == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// writeseq takes a bytestring which is our sequence, adds white space
// and a header and writes it. n is the number of the sequence.
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	spacernd := rand.New(rand.NewSource(args.Iseed))
	var i int
	for s := range sChan {
		if *errp != nil {
			continue // drain
		}
		s = addspace(s, spacernd)
		hdr := ">" + args.id(i)
		if args.Cmmt != "" {
			hdr += " " + args.Cmmt
		}
		i++
		if _, err := fmt.Fprintf(args.Wrtr, "%s\n%s\n", hdr, s); err != nil {
			*errp = err
		}
	}
}

// WriteMessy writes the same sequences as Alignment would make, as
// fasta, but with random spaces and line breaks inside the
// sequences. A reader should give back exactly what Alignment does.
func WriteMessy(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var err error
	let := letters(args.NoGap)
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		sChan <- getseq(args.Len, let, rnd)
	}
	close(sChan)
	wg.Wait()
	return err
}
