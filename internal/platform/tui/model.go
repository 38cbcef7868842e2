package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// startMsg asks the model to begin a run as soon as the program starts.
type startMsg struct{}

// Model is the Bubble Tea model for one snake game.
// The engine is shared between copies of the model; the program's Update loop
// is its only writer.
type Model struct {
	engine     *game.Engine
	screen     *core.Screen
	layout     Layout
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	loop       tickLoop
	lastErr    error
	autoStart  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a model driving engine. A nil logger discards output.
func NewModel(engine *game.Engine, layout Layout, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		layout: layout.normalized(),
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
}

// WithAutoStart makes Init start a run immediately instead of waiting in idle.
func (m Model) WithAutoStart() Model {
	m.autoStart = true
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.autoStart {
		return func() tea.Msg { return startMsg{} }
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case startMsg:
		return m.start()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if d, ok := directionFor(action); ok {
		m.engine.Steer(d)
		return m, nil
	}
	if d, ok := difficultyFor(action); ok {
		return m.setDifficulty(d)
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.loop.stop()
		return m, tea.Quit
	case core.ActionStart:
		return m.start()
	case core.ActionTogglePause:
		if m.engine.Status() == game.StatusPaused {
			return m.resume()
		}
		return m.pause()
	case core.ActionCycleColor:
		m.engine.SetColor(core.NextInPalette(m.engine.Color()))
	case core.ActionBack:
		if m.engine.Status() != game.StatusRunning {
			m.backToMenu = true
			m.loop.stop()
		}
	}

	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	if err := m.engine.Start(); err != nil {
		m.lastErr = err
		m.loop.stop()
		m.logger.Warn("cannot start game", "err", err)
		return m, nil
	}
	m.lastErr = nil

	snap := m.engine.Snapshot()
	m.logger.Info("game started",
		"run", snap.RunID,
		"difficulty", snap.Difficulty,
		"grid", fmt.Sprintf("%dx%d", snap.Grid.Width, snap.Grid.Height),
	)
	return m, m.loop.arm(m.engine.TickInterval())
}

func (m Model) pause() (tea.Model, tea.Cmd) {
	if m.engine.Pause() {
		m.loop.stop()
	}
	return m, nil
}

func (m Model) resume() (tea.Model, tea.Cmd) {
	if !m.engine.Resume() {
		return m, nil
	}
	return m, m.loop.arm(m.engine.TickInterval())
}

func (m Model) setDifficulty(d game.Difficulty) (tea.Model, tea.Cmd) {
	if !m.engine.SetDifficulty(d) {
		return m, nil
	}
	m.logger.Debug("difficulty changed", "difficulty", d)
	if m.engine.Status() != game.StatusRunning {
		return m, nil
	}
	// restart the schedule so the new interval applies now
	return m, m.loop.arm(m.engine.TickInterval())
}

// handleResize recomputes the grid without resetting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width

	grid := m.layout.Grid(msg.Width, msg.Height)
	if err := m.engine.Resize(grid); err != nil {
		m.logger.Warn("resize left no room for food", "err", err)
	}

	if grid.Empty() && m.engine.Pause() {
		m.loop.stop()
		m.logger.Debug("paused: window too small", "width", msg.Width, "height", msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.loop.current(msg) || m.engine.Status() != game.StatusRunning {
		return m, nil
	}

	if err := m.engine.Tick(); err != nil {
		m.lastErr = err
		m.logger.Error("tick failed", "err", err)
	}

	if m.engine.Status() != game.StatusRunning {
		m.loop.stop()
		snap := m.engine.Snapshot()
		m.logger.Info("game over",
			"run", snap.RunID,
			"score", snap.Score,
			"difficulty", snap.Difficulty,
			"ticks", snap.Tick,
		)
		return m, nil
	}

	return m, m.loop.arm(m.engine.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawBoard(m.screen, m.engine.Snapshot(), m.layout, m.lastErr)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the engine state as last updated.
func (m Model) Snapshot() game.Snapshot {
	return m.engine.Snapshot()
}

// Err returns the last error reported by the engine, if any.
func (m Model) Err() error {
	return m.lastErr
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the setup menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
