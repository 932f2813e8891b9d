package face

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tzface/tzface"
	"github.com/tzface/tzface/errors"
	"github.com/tzface/tzface/font"
	"github.com/tzface/tzface/zone"
)

// Config assembles a face. All fields are fixed for the program's life.
type Config struct {
	// Zones are the panels, top to bottom. One to zone.MaxZones entries.
	Zones []zone.Zone

	// Local is the UTC offset the clock's times are expressed in.
	Local zone.Offset

	// TwentyFourHour selects 15:04 over 03:04.
	TwentyFourHour bool

	// Seconds ticks and draws at second resolution instead of minute.
	Seconds bool

	// Clock is the time source. Production callers pass
	// tzface.SystemClock{}.
	Clock tzface.Clock
}

// Model is the Bubble Tea model for the clock face. Create one with New,
// run it under a tea.Program, and Close it after the program returns.
type Model struct {
	clock          tzface.Clock
	local          zone.Offset
	twentyFourHour bool
	seconds        bool
	resolution     time.Duration

	fonts *font.Table
	thin  font.Handle
	thick font.Handle

	panels []*panel
	now    zone.WallTime

	width  int
	height int

	keys     keyMap
	help     help.Model
	showHelp bool
}

// New validates the configuration, loads the faces, and captures the
// current time so the first frame is populated before any tick fires.
func New(cfg Config) (*Model, error) {
	if cfg.Clock == nil {
		return nil, errors.InvalidInput(errors.PhaseDisplay, "config has no clock")
	}
	if len(cfg.Zones) == 0 {
		return nil, errors.InvalidInput(errors.PhaseDisplay, "config has no zones")
	}
	if len(cfg.Zones) > zone.MaxZones {
		return nil, errors.Unsupported(errors.PhaseDisplay,
			fmt.Sprintf("%d zones (the face holds %d)", len(cfg.Zones), zone.MaxZones))
	}

	fonts := font.NewTable()
	m := &Model{
		clock:          cfg.Clock,
		local:          cfg.Local,
		twentyFourHour: cfg.TwentyFourHour,
		seconds:        cfg.Seconds,
		resolution:     time.Minute,
		fonts:          fonts,
		thin:           fonts.Load(font.Thin()),
		thick:          fonts.Load(font.Thick()),
		keys:           defaultKeyMap(),
		help:           help.New(),
	}
	if cfg.Seconds {
		m.resolution = time.Second
	}
	for _, z := range cfg.Zones {
		m.panels = append(m.panels, &panel{zone: z, dirty: true})
	}
	m.now = zone.At(m.clock.Now())

	Logger().Info("face configured",
		zap.Int("panels", len(m.panels)),
		zap.Stringer("local_offset", m.local),
		zap.Bool("twenty_four_hour", m.twentyFourHour),
		zap.Duration("resolution", m.resolution),
	)
	return m, nil
}

// Init arms the first tick.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.clock, m.resolution)
}

// Update advances the face. A tick is the only writer of the shared time;
// panels read it during View, so a frame is internally consistent even
// when panels straddle a day boundary.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			Logger().Info("quit requested")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.layout()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		Logger().Debug("resized",
			zap.Int("width", msg.Width),
			zap.Int("height", msg.Height),
		)

	case tickMsg:
		m.now = zone.At(time.Time(msg))
		m.markDirty()
		return m, tickCmd(m.clock, m.resolution)
	}

	return m, nil
}

// View assembles the frame, re-rendering only panels marked dirty since
// the previous frame.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	blocks := make([]string, 0, len(m.panels)+1)
	for _, p := range m.panels {
		if p.dirty {
			p.cache = m.redraw(p)
			p.dirty = false
		}
		blocks = append(blocks, p.cache)
	}
	if m.helpVisible() {
		blocks = append(blocks, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Close releases the loaded faces. The model must not be used afterwards.
func (m *Model) Close() {
	m.fonts.Unload(m.thick)
	m.fonts.Unload(m.thin)
	m.fonts.Close()
	Logger().Info("face closed")
}

// layout recomputes the fixed panel regions after a resize or help toggle
// and forces a full redraw. Panels split the height evenly; the last one
// absorbs the remainder rows.
func (m *Model) layout() {
	h := m.height
	if m.helpVisible() {
		h--
	}
	if h < 0 {
		h = 0
	}
	rows := h / len(m.panels)
	for i, p := range m.panels {
		p.width = m.width
		p.height = rows
		if i == len(m.panels)-1 {
			p.height = h - rows*(len(m.panels)-1)
		}
	}
	m.markDirty()
}

// helpVisible reports whether a row is reserved for the help bar. On a
// screen too short to spare one the toggle is a no-op.
func (m *Model) helpVisible() bool {
	return m.showHelp && m.height > len(m.panels)
}

func (m *Model) markDirty() {
	for _, p := range m.panels {
		p.dirty = true
	}
}
