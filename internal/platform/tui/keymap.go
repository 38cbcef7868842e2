package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// KeyMap translates Bubble Tea key messages to game actions.
// It also feeds the help footer.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Start       key.Binding
	Pause       key.Binding
	Difficulty1 key.Binding
	Difficulty2 key.Binding
	Difficulty3 key.Binding
	Color       key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows, WASD and vim keys steer.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Start:       key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "start")),
		Pause:       key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Difficulty1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Difficulty2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "normal")),
		Difficulty3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Color:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Start, k.Pause, k.Color, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Back, k.Quit},
		{k.Difficulty1, k.Difficulty2, k.Difficulty3, k.Color},
	}
}

// Action maps a key message to an action. Unbound keys yield ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionTogglePause
	case key.Matches(msg, k.Difficulty1):
		return core.ActionDifficulty1
	case key.Matches(msg, k.Difficulty2):
		return core.ActionDifficulty2
	case key.Matches(msg, k.Difficulty3):
		return core.ActionDifficulty3
	case key.Matches(msg, k.Color):
		return core.ActionCycleColor
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// directionFor returns the steering direction of a directional action.
func directionFor(a core.Action) (game.Direction, bool) {
	switch a {
	case core.ActionUp:
		return game.Up, true
	case core.ActionDown:
		return game.Down, true
	case core.ActionLeft:
		return game.Left, true
	case core.ActionRight:
		return game.Right, true
	}
	return game.Direction{}, false
}

// difficultyFor returns the tier selected by a difficulty hotkey action.
func difficultyFor(a core.Action) (game.Difficulty, bool) {
	switch a {
	case core.ActionDifficulty1:
		return game.DifficultyEasy, true
	case core.ActionDifficulty2:
		return game.DifficultyNormal, true
	case core.ActionDifficulty3:
		return game.DifficultyHard, true
	}
	return 0, false
}
