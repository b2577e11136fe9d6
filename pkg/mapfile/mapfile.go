// 3 Aug 2020

// Package mapfile gives read only access to an input file by
// memory mapping it. Alignment files are read once, front to back,
// so this is a cheap way to hand the whole file to a line source.
package mapfile

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// File is a memory mapped file. Call Close when finished.
type File struct {
	fp *os.File
	mm mmap.MMap
}

// Open maps fname read only. A zero length file cannot be mapped,
// so we just give back an empty File.
func Open(fname string) (*File, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	info, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, errors.Wrapf(err, "stat %s", fname)
	}
	if info.Size() == 0 {
		return &File{fp: fp}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, errors.Wrapf(err, "mapping %s", fname)
	}
	return &File{fp: fp, mm: mm}, nil
}

// Bytes returns the contents. The slice is only valid until Close.
func (f *File) Bytes() []byte { return f.mm }

// Len is the size of the file.
func (f *File) Len() int { return len(f.mm) }

// NRecord counts the lines starting with ">" which is the number of
// sequences in a fasta file. It is a quick look before reading.
func (f *File) NRecord() int {
	n := 0
	if bytes.HasPrefix(f.mm, []byte(">")) {
		n++
	}
	return n + bytes.Count(f.mm, []byte("\n>"))
}

// Close unmaps the file and closes it.
func (f *File) Close() error {
	var err error
	if f.mm != nil {
		err = f.mm.Unmap()
		f.mm = nil
	}
	if cerr := f.fp.Close(); err == nil {
		err = cerr
	}
	return err
}
