package msaconv

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrew-torda/msaconv/pkg/alphabet"
	"github.com/andrew-torda/msaconv/pkg/colstat"
	"github.com/andrew-torda/msaconv/pkg/msa"
)

var (
	titleColour  = lipgloss.Color("#7C3AED")
	mutedColour  = lipgloss.Color("#9CA3AF")
	borderColour = lipgloss.Color("#374151")
)

// styles are made per writer so colour is only used on terminals.
type styles struct {
	title lipgloss.Style
	key   lipgloss.Style
	box   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(titleColour),
		key:   r.NewStyle().Foreground(mutedColour).Width(12),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColour).Padding(0, 1),
	}
}

// summary is what info prints, as key, value pairs.
func summary(aln *msa.Alignment) [][2]string {
	seqs := make([][]byte, aln.Len())
	for i := range seqs {
		seqs[i] = aln.AppendSeq(nil, i)
	}
	ret := [][2]string{
		{"rows", fmt.Sprint(aln.Len())},
		{"columns", fmt.Sprint(aln.Width())},
		{"type", alphabet.Guess(seqs...).String()},
	}
	if aln.Width() > 0 && aln.Len() > 0 {
		c := colstat.Count(aln)
		var gap, ntrpy float32
		nIdent := 0
		for col, e := range c.Entropy(false) {
			gap += c.GapFrac(col)
			ntrpy += e
		}
		for _, s := range colstat.Conservation(aln) {
			if s == colstat.Identical {
				nIdent++
			}
		}
		ret = append(ret,
			[2]string{"gaps", fmt.Sprintf("%.1f%%", 100*gap/float32(c.Width()))},
			[2]string{"identical", fmt.Sprintf("%d columns", nIdent)},
			[2]string{"entropy", fmt.Sprintf("%.3f per column", ntrpy/float32(c.Width()))})
	}
	annot := aln.Annotations()
	keys := make([]string, 0, len(annot))
	for k := range annot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ret = append(ret, [2]string{k, annot[k]})
	}
	return ret
}

// Info prints a summary of an alignment, then the first few rows.
func (a *App) Info(in, from string) error {
	aln, err := a.read(in, from)
	if err != nil {
		return err
	}
	st := newStyles(a.Stdout)
	lines := []string{st.title.Render(in)}
	for _, kv := range summary(aln) {
		lines = append(lines, st.key.Render(kv[0])+kv[1])
	}
	fmt.Fprintln(a.Stdout, st.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	fmt.Fprintln(a.Stdout, aln)
	return nil
}
