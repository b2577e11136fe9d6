// 31 July 2020

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/msaconv/pkg/common"
	"github.com/andrew-torda/msaconv/pkg/randseq"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.BoolVar(&args.NoGap, "g", false, "do not put gaps in sequences")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.StringVar(&args.Prefix, "p", "s", "prefix for sequence names")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(common.ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(common.ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		os.Exit(common.ExitUsageError)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[2])
		os.Exit(common.ExitUsageError)
	} else {
		args.Len = int(nlen)
	}

	fname := f.Args()[0]
	fp := os.Stdout
	if fname != common.Stdio && fname != "" {
		var err error
		if fp, err = os.Create(fname); err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(common.ExitFailure)
		}
	}
	w := bufio.NewWriter(fp)
	args.Wrtr = w
	err := randseq.WriteMessy(&args)
	if err == nil {
		err = w.Flush()
	}
	if fp != os.Stdout {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
