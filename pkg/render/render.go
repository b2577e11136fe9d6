// 14 Oct 2026
// Package render draws a picture of an alignment. Each residue is
// a coloured square, gaps are left white and the names go down
// the left hand side.

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

// Options says how big things should be. Zero values get defaults.
type Options struct {
	Cell     int     // pixels per residue
	FontSize float64 // points, at 72 dpi, for the names
}

const (
	dfltCell     = 12
	dfltFontSize = 10
	labelPad     = 4   // pixels between names and residues
	charWidth    = 0.6 // width of a character, relative to font size
)

var (
	gapColour     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	unknownColour = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
)

// Roughly the Clustal X colours.
var protColours = map[byte]color.RGBA{}
var ntColours = map[byte]color.RGBA{
	'A': {0x40, 0xc0, 0x40, 0xff},
	'C': {0x40, 0x40, 0xe0, 0xff},
	'G': {0xf0, 0x90, 0x30, 0xff},
	'T': {0xe0, 0x30, 0x30, 0xff},
	'U': {0xe0, 0x30, 0x30, 0xff},
}

func init() {
	groups := []struct {
		syms string
		c    color.RGBA
	}{
		{"AILMFWV", color.RGBA{0x80, 0xa0, 0xf0, 0xff}},
		{"KR", color.RGBA{0xf0, 0x15, 0x05, 0xff}},
		{"DE", color.RGBA{0xc0, 0x48, 0xc0, 0xff}},
		{"NQST", color.RGBA{0x15, 0xc0, 0x15, 0xff}},
		{"C", color.RGBA{0xf0, 0x80, 0x80, 0xff}},
		{"G", color.RGBA{0xf0, 0x90, 0x48, 0xff}},
		{"P", color.RGBA{0xc0, 0xc0, 0x00, 0xff}},
		{"HY", color.RGBA{0x15, 0xa4, 0xa4, 0xff}},
	}
	for _, g := range groups {
		for i := 0; i < len(g.syms); i++ {
			protColours[g.syms[i]] = g.c
		}
	}
}

// colour gives the colour for one symbol. Lower case is treated as
// upper case.
func colour(c byte, nt bool) color.RGBA {
	if alphabet.IsGap(c) {
		return gapColour
	}
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	tbl := protColours
	if nt {
		tbl = ntColours
	}
	if col, ok := tbl[c]; ok {
		return col
	}
	return unknownColour
}

func (o Options) withDefaults() Options {
	if o.Cell <= 0 {
		o.Cell = dfltCell
	}
	if o.FontSize <= 0 {
		o.FontSize = dfltFontSize
	}
	return o
}

// Draw makes the picture. The colour scheme depends on whether the
// sequences look like nucleotides or protein.
func Draw(a *msa.Alignment, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()
	font, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	seqs := make([][]byte, a.Len())
	maxID := 0
	for i := range seqs {
		seqs[i] = a.AppendSeq(nil, i)
		maxID = max(maxID, len(a.ID(i)))
	}
	nt := alphabet.Guess(seqs...).IsNtide()

	rowH := max(opts.Cell, int(math.Ceil(opts.FontSize*1.2)))
	labelW := int(math.Ceil(float64(maxID)*opts.FontSize*charWidth)) + labelPad
	w := labelW + a.Width()*opts.Cell
	h := a.Len() * rowH
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, s := range seqs {
		y := i * rowH
		for col, c := range s {
			x := labelW + col*opts.Cell
			cell := image.Rect(x, y, x+opts.Cell, y+opts.Cell)
			draw.Draw(img, cell, image.NewUniform(colour(c, nt)), image.Point{}, draw.Src)
		}
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(image.Rect(0, 0, labelW, h))
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)
	for i := 0; i < a.Len(); i++ {
		baseline := i*rowH + int(opts.FontSize)
		if _, err := ctx.DrawString(a.ID(i), freetype.Pt(0, baseline)); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// WritePNG draws the alignment and writes it as a png.
func WritePNG(w io.Writer, a *msa.Alignment, opts Options) error {
	img, err := Draw(a, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
