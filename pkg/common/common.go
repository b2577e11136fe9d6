// 29 Apr 2020
// Constants and small helpers shared by the msaconv packages and
// commands.

package common

import (
	"fmt"
	"io"
	"os"
)

// Exit codes for the commands.
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// GapChar is the gap we write when we have to make one up.
// Readers accept more (see the alphabet package).
const GapChar byte = '-'

// Stdio is the file name that means standard input or output.
const Stdio = "-"

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer fTmp.Close()

	if _, err := io.WriteString(fTmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", fTmp.Name(), err)
	}
	return fTmp.Name(), nil
}
