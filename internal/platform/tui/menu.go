package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Selection holds the player's choices from the setup menu.
type Selection struct {
	Difficulty game.Difficulty
	Color      core.Color
}

type setupRow int

const (
	rowDifficulty setupRow = iota
	rowColor
	rowPlay
	setupRowCount
)

// SetupModel lets users choose difficulty and snake color before playing.
type SetupModel struct {
	cursor    setupRow
	selection Selection
	tiers     game.Tiers
	width     int
	height    int
	keys      KeyMap
	choosing  bool
	quitting  bool
}

// NewSetupModel creates a setup menu preselected with initial.
func NewSetupModel(initial Selection, tiers game.Tiers, width, height int) SetupModel {
	if !initial.Difficulty.Valid() {
		initial.Difficulty = game.DifficultyNormal
	}
	if initial.Color == core.ColorDefault {
		initial.Color = core.SnakePalette[0]
	}
	if tiers == nil {
		tiers = game.DefaultTiers()
	}

	return SetupModel{
		selection: initial,
		tiers:     tiers,
		width:     width,
		height:    height,
		keys:      DefaultKeyMap(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if d, ok := difficultyFor(action); ok {
		m.selection.Difficulty = d
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < setupRowCount-1 {
			m.cursor++
		}
	case core.ActionLeft:
		m.change(-1)
	case core.ActionRight:
		m.change(+1)
	case core.ActionCycleColor:
		m.selection.Color = core.NextInPalette(m.selection.Color)
	case core.ActionStart, core.ActionTogglePause:
		m.choosing = false
	}

	return m, nil
}

// change moves the value on the current row by step.
func (m *SetupModel) change(step int) {
	switch m.cursor {
	case rowDifficulty:
		d := m.selection.Difficulty + game.Difficulty(step)
		if d.Valid() {
			m.selection.Difficulty = d
		}
	case rowColor:
		if step < 0 {
			m.selection.Color = core.PrevInPalette(m.selection.Color)
		} else {
			m.selection.Color = core.NextInPalette(m.selection.Color)
		}
	}
}

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")

	tier := m.tiers.Settings(m.selection.Difficulty)
	rows := []string{
		fmt.Sprintf("Difficulty  < %-6s >  %v, %d obstacles", m.selection.Difficulty, tier.TickInterval, tier.ObstacleCount),
		fmt.Sprintf("Color       < %-14s > ", m.selection.Color),
		"Play",
	}

	for i, row := range rows {
		cursor := "  "
		if setupRow(i) == m.cursor {
			cursor = "> "
		}
		line := centerText(cursor+row, m.width)
		if setupRow(i) == rowColor {
			line += Swatch(m.selection.Color, 4)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("←/→: Change  |  ↑/↓: Move  |  Enter: Play  |  Q: Quit", m.width))

	return b.String()
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}
