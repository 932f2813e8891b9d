package face

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tzface/tzface/errors"
	"github.com/tzface/tzface/font"
	"github.com/tzface/tzface/zone"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

// at builds a clock frozen at the given wall time.
func at(hour, min int) fakeClock {
	return fakeClock{now: time.Date(2025, 6, 7, hour, min, 0, 0, time.UTC)}
}

func stockZones() []zone.Zone {
	return []zone.Zone{
		{Name: "US Central", Offset: -6 * 60},
		{Name: "US Eastern", Offset: -5 * 60},
		{Name: "India", Offset: 5*60 + 30},
	}
}

func testModel(t *testing.T, cfg Config) *Model {
	t.Helper()
	if cfg.Clock == nil {
		cfg.Clock = at(14, 5)
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func resize(m *Model, width, height int) {
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want errors.Kind
	}{
		{
			name: "missing clock",
			cfg:  Config{Zones: stockZones()},
			want: errors.KindInvalidInput,
		},
		{
			name: "no zones",
			cfg:  Config{Clock: at(9, 0)},
			want: errors.KindInvalidInput,
		},
		{
			name: "too many zones",
			cfg: Config{
				Clock: at(9, 0),
				Zones: append(stockZones(), zone.Zone{Name: "UTC"}),
			},
			want: errors.KindUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if err == nil {
				t.Fatal("New() error = nil, want error")
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDisplay, Kind: tt.want}) {
				t.Errorf("New() error = %v, want kind %s", err, tt.want)
			}
		})
	}
}

func TestNew_FullStack(t *testing.T) {
	m, err := New(Config{Clock: at(9, 0), Zones: stockZones()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer m.Close()

	if got := len(m.panels); got != 3 {
		t.Errorf("panels = %d, want 3", got)
	}
	if m.resolution != time.Minute {
		t.Errorf("resolution = %v, want %v", m.resolution, time.Minute)
	}
	if m.Init() == nil {
		t.Error("Init() = nil, want armed tick")
	}
}

func TestModel_FirstFrame(t *testing.T) {
	m := testModel(t, Config{
		Clock:          at(14, 5),
		Zones:          []zone.Zone{{Name: "Home", Offset: 0}},
		TwentyFourHour: true,
	})
	resize(m, 40, 18)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Home") {
		t.Errorf("View() missing zone name %q", "Home")
	}
	for i, row := range font.Thick().Render("14:05") {
		if !strings.Contains(view, row) {
			t.Errorf("View() missing block digit row %d %q", i, row)
		}
	}
}

func TestModel_BlankBeforeFirstResize(t *testing.T) {
	m := testModel(t, Config{Zones: stockZones()})
	if got := m.View(); got != "" {
		t.Errorf("View() before window size = %q, want empty", got)
	}
}

func TestModel_TickRedraws(t *testing.T) {
	m := testModel(t, Config{
		Clock:          at(14, 5),
		Zones:          []zone.Zone{{Name: "Home", Offset: 0}},
		TwentyFourHour: true,
	})
	resize(m, 40, 6)

	if view := ansi.Strip(m.View()); !strings.Contains(view, "14:05") {
		t.Fatalf("View() = %q, want to contain 14:05", view)
	}

	_, cmd := m.Update(tickMsg(time.Date(2025, 6, 7, 14, 6, 0, 0, time.UTC)))
	if cmd == nil {
		t.Error("Update(tick) cmd = nil, want re-armed tick")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "14:06") {
		t.Errorf("View() after tick = %q, want to contain 14:06", view)
	}
}

func TestModel_ViewCache(t *testing.T) {
	m := testModel(t, Config{
		Clock:          at(14, 5),
		Zones:          []zone.Zone{{Name: "Home", Offset: 0}},
		TwentyFourHour: true,
	})
	resize(m, 40, 6)

	first := m.View()

	// No panel is dirty, so the frame must come from the cache even
	// though the shared time moved underneath.
	m.now = zone.WallTime{Hour: 23, Min: 59}
	if got := m.View(); got != first {
		t.Error("View() re-rendered clean panels")
	}

	m.markDirty()
	if got := m.View(); got == first {
		t.Error("View() served a stale cache after panels were marked dirty")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	quits := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	}
	for _, msg := range quits {
		t.Run(msg.String(), func(t *testing.T) {
			m := testModel(t, Config{Zones: stockZones()})
			resize(m, 40, 18)

			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatalf("Update(%s) cmd = nil, want quit", msg)
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("Update(%s) cmd produced %T, want tea.QuitMsg", msg, cmd())
			}
		})
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := testModel(t, Config{Zones: stockZones()})
	resize(m, 60, 19)

	if view := ansi.Strip(m.View()); strings.Contains(view, "quit") {
		t.Fatal("View() shows help before toggle")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if view := ansi.Strip(m.View()); !strings.Contains(view, "quit") {
		t.Error("View() missing help bar after toggle")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if view := ansi.Strip(m.View()); strings.Contains(view, "quit") {
		t.Error("View() still shows help after second toggle")
	}
}

func TestModel_Close(t *testing.T) {
	m, err := New(Config{Clock: at(9, 0), Zones: stockZones()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m.Close()
	if n := m.fonts.Len(); n != 0 {
		t.Errorf("fonts.Len() after Close = %d, want 0", n)
	}
}
