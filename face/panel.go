package face

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/tzface/tzface/zone"
)

// panel is one fixed region of the face, bound to a zone for the life of
// the program. A panel re-renders only when marked dirty; View serves the
// cached block otherwise.
type panel struct {
	zone   zone.Zone
	width  int
	height int
	dirty  bool
	cache  string
}

// redraw renders a panel's block: the zone name centered in the top third,
// the zone's time centered in the remaining two thirds, both over a solid
// fill. The fill is day colors before noon in that zone and night colors
// from noon on.
func (m *Model) redraw(p *panel) string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	t := zone.Convert(m.now, p.zone.Offset, m.local)
	style := dayStyle
	if t.IsPM() {
		style = nightStyle
	}

	nameHeight := p.height / 3
	timeHeight := p.height - nameHeight

	blocks := make([]string, 0, 2)
	if nameHeight > 0 {
		blocks = append(blocks, block(style, p.width, nameHeight, m.nameArt(p.zone.Name, p.width)))
	}
	text := t.Format(m.twentyFourHour, m.seconds)
	blocks = append(blocks, block(style, p.width, timeHeight, m.timeArt(text, p.width, timeHeight)))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// block fills an exact width-by-height region with content centered both
// ways. Height alone only sets a minimum, so the region is also clamped.
func block(style lipgloss.Style, width, height int, content string) string {
	return style.
		Width(width).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// nameArt renders a zone name through the thin face handle.
func (m *Model) nameArt(name string, width int) string {
	rows, err := m.fonts.Render(m.thin, name)
	if err != nil {
		Logger().Warn("thin face unavailable", zap.Error(err))
		return truncate(name, width)
	}
	return truncate(rows[0], width)
}

// timeArt renders the time text in block digits when the region can hold
// them, falling back to the thin single-row form otherwise.
func (m *Model) timeArt(text string, width, height int) string {
	if f, ok := m.fonts.Get(m.thick); ok && f.Height() <= height && f.Width(text) <= width {
		return strings.Join(f.Render(text), "\n")
	}
	return truncate(text, width)
}

// truncate clips s to width cells, marking clipped strings with a trailing
// ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
