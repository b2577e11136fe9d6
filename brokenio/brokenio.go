// brokenio is a wrapper around an io.Reader. It lets us break reads
// so we can check that alignment readers report input failures and
// do not hand back half an alignment.
// Typical use: You have a reader from a file, a compressed or an
// http source. You write
//  reader = brokenio.NewReader(reader)
// and then say when or how often reading should fail.
// When we introduce an error, we return an error.
// When we introduce a failure on the first read, we return without an
// error. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned by a read that we deliberately broke.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// Reader is modelled on the various Readers in the standard library,
// but with variables controlling errors.
// failAfter is the number of bytes to let through before every read fails.
// A negative value means never. probFail is the chance that any read
// fails, so 0.05 means failure in 5% of the cases.
type Reader struct {
	rdrOrig      io.Reader // Wrapped reader
	rnd          *rand.Rand
	failAfter    int
	probFail     float32
	probZeroFile float32 // Probability of returning a zero length file
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader - a wrapper around the old one.
// Until one of the setters is called, it behaves like the original.
func NewReader(rIn io.Reader, seed int64) *Reader {
	return &Reader{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(seed)),
		failAfter: -1,
	}
}

// SetFailAfter makes every read fail once n bytes have been passed on.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetProbFail set the probability of a read failure.
// It must be between zero and 1.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// NByte is the number of bytes passed through so far.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, fmt.Errorf("call %d: %w", r.nCalled, ErrBroken)
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}
