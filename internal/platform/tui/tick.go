// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the schedule that armed it; ticks from an older schedule are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickLoop keeps at most one live tick schedule. Arming or stopping bumps the
// generation so a tick already in flight no longer matches.
type tickLoop struct {
	gen   uint64
	armed bool
}

// arm starts a new schedule and returns the command for its first tick.
func (l *tickLoop) arm(interval time.Duration) tea.Cmd {
	l.gen++
	l.armed = true
	gen := l.gen
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

func (l *tickLoop) stop() {
	l.gen++
	l.armed = false
}

// current reports whether msg belongs to the live schedule.
func (l tickLoop) current(msg TickMsg) bool {
	return l.armed && msg.Gen == l.gen
}
