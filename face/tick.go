package face

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tzface/tzface"
)

// tickMsg delivers the time captured at a tick boundary.
type tickMsg time.Time

// tickCmd arms a single timer for the next resolution boundary, so frames
// land on minute (or second) edges rather than drifting from program start.
func tickCmd(clock tzface.Clock, resolution time.Duration) tea.Cmd {
	now := clock.Now()
	next := now.Truncate(resolution).Add(resolution)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
