package font

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Face rasterizes text into rows of terminal cells.
type Face interface {
	// Name identifies the face in logs.
	Name() string

	// Height is the number of cell rows every rendered string occupies.
	Height() int

	// Render rasterizes s into exactly Height rows of equal display width.
	// Runes the face has no glyph for render as blank cells; rendering
	// never fails mid-frame.
	Render(s string) []string

	// Width reports the display width Render would produce for s.
	Width(s string) int
}

// textFace passes text through as a single row of plain cells.
type textFace struct {
	name string
}

func (f *textFace) Name() string { return f.name }

func (f *textFace) Height() int { return 1 }

func (f *textFace) Render(s string) []string { return []string{s} }

func (f *textFace) Width(s string) int { return ansi.StringWidth(s) }

// cellFace rasterizes each rune from a fixed glyph set, one blank column
// between glyphs.
type cellFace struct {
	name   string
	height int
	glyphs map[rune][]string
	blank  []string
}

func (f *cellFace) Name() string { return f.name }

func (f *cellFace) Height() int { return f.height }

func (f *cellFace) Render(s string) []string {
	rows := make([]strings.Builder, f.height)
	for i, r := range s {
		g, ok := f.glyphs[r]
		if !ok {
			g = f.blank
		}
		for row := 0; row < f.height; row++ {
			if i > 0 {
				rows[row].WriteByte(' ')
			}
			rows[row].WriteString(g[row])
		}
	}

	out := make([]string, f.height)
	for row := range rows {
		out[row] = rows[row].String()
	}
	return out
}

func (f *cellFace) Width(s string) int {
	w := 0
	for i, r := range s {
		if i > 0 {
			w++
		}
		g, ok := f.glyphs[r]
		if !ok {
			g = f.blank
		}
		w += ansi.StringWidth(g[0])
	}
	return w
}
