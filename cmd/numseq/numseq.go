// 3 Aug 2020

// Open fasta files and count the lines starting with ">". This is the
// number of sequences, found without reading them.

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/msaconv/pkg/common"
	"github.com/andrew-torda/msaconv/pkg/mapfile"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "filename...")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(common.ExitUsageError)
	}
	ret := common.ExitSuccess
	for _, fname := range os.Args[1:] {
		mf, err := mapfile.Open(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			ret = common.ExitFailure
			continue
		}
		fmt.Printf("%s\t%d\n", fname, mf.NRecord())
		mf.Close()
	}
	os.Exit(ret)
}
