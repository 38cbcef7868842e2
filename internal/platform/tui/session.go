package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// SessionOptions configures a session: the base engine options, the layout
// and the initial terminal size.
type SessionOptions struct {
	// Engine holds tiers, default difficulty, color and seed.
	// Grid is derived from the window size and ignored here.
	Engine game.Options
	Layout Layout
	Screen core.RuntimeConfig
	Logger *log.Logger

	// SkipSetup goes straight into a game with the Engine difficulty and color.
	SkipSetup bool
}

// SessionModel manages the full session flow: setup -> game -> setup.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	setup    SetupModel
	game     *Model
	inGame   bool
	quitting bool

	// tickGen carries the tick generation from one game to the next, so a
	// tick armed by a finished game never matches the new game's schedule.
	tickGen uint64
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Engine.Seed == 0 {
		opts.Engine.Seed = time.Now().UnixNano()
	}

	initial := Selection{Difficulty: opts.Engine.Difficulty, Color: opts.Engine.Color}
	m := SessionModel{
		opts:  opts,
		setup: NewSetupModel(initial, opts.Engine.Tiers, opts.Screen.ScreenW, opts.Screen.ScreenH),
	}
	if opts.SkipSetup {
		m = m.enterGame(m.setup.selection)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.inGame {
		return m.game.Init()
	}
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Screen.ScreenW = wsm.Width
		m.opts.Screen.ScreenH = wsm.Height
	}

	if m.inGame {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.setup.Update(msg)
	if setup, ok := next.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if sel := m.setup.Selected(); sel != nil {
		m = m.enterGame(*sel)
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.tickGen = m.game.loop.gen
		snap := m.game.Snapshot()
		m.setup = NewSetupModel(
			Selection{Difficulty: snap.Difficulty, Color: snap.Color},
			m.opts.Engine.Tiers,
			m.opts.Screen.ScreenW, m.opts.Screen.ScreenH,
		)
		m.game = nil
		m.inGame = false
		return m, m.setup.Init()
	}

	return m, cmd
}

// enterGame builds a fresh engine for sel on the current window.
func (m SessionModel) enterGame(sel Selection) SessionModel {
	opts := m.opts.Engine
	opts.Difficulty = sel.Difficulty
	opts.Color = sel.Color
	opts.Grid = m.opts.Layout.Grid(m.opts.Screen.ScreenW, m.opts.Screen.ScreenH)

	gm := NewModel(game.NewEngine(opts), m.opts.Layout, m.opts.Screen, m.opts.Logger).WithAutoStart()
	gm.loop = tickLoop{gen: m.tickGen}
	m.game = &gm
	m.inGame = true
	// the next game from this session gets a different layout
	m.opts.Engine.Seed++
	return m
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame {
		return m.game.View()
	}
	return m.setup.View()
}

// InGame reports whether a game is on screen.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// RunSession starts a local Bubble Tea program for a session.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
