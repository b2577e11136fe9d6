// Package msaconv holds the commands behind the msaconv program.
// The cobra commands in root.go only pick apart arguments and
// flags. The work is done by the methods of App here, which read
// and write through the msaio package.
package msaconv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/andrew-torda/msaconv/pkg/common"
	"github.com/andrew-torda/msaconv/pkg/format"
	"github.com/andrew-torda/msaconv/pkg/linesrc"
	"github.com/andrew-torda/msaconv/pkg/mapfile"
	"github.com/andrew-torda/msaconv/pkg/msa"
	"github.com/andrew-torda/msaconv/pkg/msaio"
	"github.com/andrew-torda/msaconv/pkg/randseq"
	"github.com/andrew-torda/msaconv/pkg/render"
)

// App is one run of the program. Tests fill in their own
// readers and writers.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Cfg    Config
	logger *log.Logger
}

// NewApp returns an App on the standard streams.
func NewApp() *App {
	a := &App{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	a.logger = log.New(a.Stderr)
	return a
}

// setConfig installs the config and sets up logging to match.
func (a *App) setConfig(c Config) {
	a.Cfg = c
	a.logger = log.New(a.Stderr)
	lvl, err := c.level()
	if err != nil {
		a.logger.SetLevel(log.InfoLevel)
		a.logger.Warn("unknown log-level, defaulting to info", "provided", c.LogLevel)
		return
	}
	a.logger.SetLevel(lvl)
	a.logger.Debug("config", "wrap-width", c.WrapWidth, "descriptions", c.Descriptions,
		"consensus", c.Consensus, "alphabet", c.Alphabet)
}

// input is an alignment file open for reading.
type input struct {
	name string
	src  *linesrc.Source
	mf   *mapfile.File
}

// openInput maps a file, or reads standard input for "-".
func (a *App) openInput(name string) (*input, error) {
	if name == common.Stdio {
		return &input{name: "stdin", src: linesrc.New(a.Stdin)}, nil
	}
	mf, err := mapfile.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	return &input{name: name, src: linesrc.FromBytes(mf.Bytes()), mf: mf}, nil
}

func (in *input) Close() error {
	if in.mf == nil {
		return nil
	}
	return in.mf.Close()
}

// kindFor works out a format from a flag or, failing that, the
// file's extension. It gives format.Unknown if neither says.
func kindFor(flag, fname string) (format.Kind, error) {
	if flag != "" {
		k, err := format.ParseKind(flag)
		return k, errors.Wrapf(err, "format \"%s\"", flag)
	}
	if fname == common.Stdio {
		return format.Unknown, nil
	}
	k, _ := format.ParseKind(filepath.Ext(fname))
	return k, nil
}

// read gets one alignment from a file. from may be empty.
func (a *App) read(fname, from string) (*msa.Alignment, error) {
	kind, err := kindFor(from, fname)
	if err != nil {
		return nil, err
	}
	v, err := a.Cfg.Validator()
	if err != nil {
		return nil, err
	}
	in, err := a.openInput(fname)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	if kind == format.Unknown {
		kind = msaio.Detect(in.src)
		a.logger.Debug("detected", "file", in.name, "format", kind)
	}
	if kind == format.FastaAlignment && in.mf != nil {
		a.logger.Debug("mapped", "file", in.name, "bytes", in.mf.Len(), "records", in.mf.NRecord())
	}
	aln, err := msaio.ParseWith(in.src, kind, v)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", in.name)
	}
	a.logger.Info("read", "file", in.name, "format", kind, "rows", aln.Len(), "columns", aln.Width())
	return aln, nil
}

// write puts an alignment in a file, or standard output for "-".
// The format has to come from to or the file name.
func (a *App) write(aln *msa.Alignment, fname, to string) error {
	kind, err := kindFor(to, fname)
	if err != nil {
		return err
	}
	if kind == format.Unknown {
		return errors.Errorf("cannot tell output format from \"%s\", use --to", fname)
	}
	return a.create(fname, func(w io.Writer) error {
		if err := msaio.WriteTo(w, aln, kind, a.Cfg.WriteOptions()); err != nil {
			return err
		}
		a.logger.Info("wrote", "file", fname, "format", kind, "rows", aln.Len())
		return nil
	})
}

// create opens fname, or uses standard output, and runs wrt on it.
func (a *App) create(fname string, wrt func(io.Writer) error) error {
	if fname == common.Stdio {
		return wrt(a.Stdout)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "output")
	}
	if err := wrt(fp); err != nil {
		fp.Close()
		return errors.Wrapf(err, "writing %s", fname)
	}
	return errors.Wrapf(fp.Close(), "closing %s", fname)
}

// Detect prints the format of each file.
func (a *App) Detect(fnames []string) error {
	for _, fname := range fnames {
		in, err := a.openInput(fname)
		if err != nil {
			return err
		}
		k := msaio.Detect(in.src)
		in.Close()
		fmt.Fprintf(a.Stdout, "%s\t%s\n", in.name, k)
	}
	return nil
}

// Convert reads one format and writes another.
func (a *App) Convert(in, out, from, to string) error {
	aln, err := a.read(in, from)
	if err != nil {
		return err
	}
	return a.write(aln, out, to)
}

// refIndex finds the reference sequence for squash. It can be an
// identifier, or the number of the sequence, counting from 1.
func refIndex(aln *msa.Alignment, ref string) (int, error) {
	if i := aln.Index(ref); i != -1 {
		return i, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= aln.Len() {
		return n - 1, nil
	}
	return 0, errors.Errorf("no sequence \"%s\" in alignment", ref)
}

// Squash removes the columns where the reference has a gap.
func (a *App) Squash(in, out, ref, from, to string) error {
	aln, err := a.read(in, from)
	if err != nil {
		return err
	}
	i, err := refIndex(aln, ref)
	if err != nil {
		return err
	}
	sq, err := msa.Squash(aln, i)
	if err != nil {
		return err
	}
	a.logger.Debug("squashed", "reference", aln.ID(i), "columns", aln.Width(), "kept", sq.Width())
	if to == "" && out == common.Stdio {
		if k, err := format.ParseKind(filepath.Ext(in)); err == nil {
			to = k.String() // same as input
		}
	}
	return a.write(sq, out, to)
}

// Render draws the alignment as a png.
func (a *App) Render(in, out, from string) error {
	aln, err := a.read(in, from)
	if err != nil {
		return err
	}
	return a.create(out, func(w io.Writer) error {
		return render.WritePNG(w, aln, a.Cfg.RenderOptions())
	})
}

// Random writes a random alignment.
func (a *App) Random(out, to string, args randseq.RandSeqArgs) error {
	aln := randseq.Alignment(&args)
	return a.write(aln, out, to)
}
