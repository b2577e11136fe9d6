// 14 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/msaconv/pkg/msaconv"
)

func main() {
	os.Exit(msaconv.Run(msaconv.NewApp(), os.Args[1:]))
}
