package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// obstacleFree keeps model tests independent of where obstacles land.
var obstacleFree = game.Tiers{
	game.DifficultyEasy:   {TickInterval: 150 * time.Millisecond, ObstacleCount: 0},
	game.DifficultyNormal: {TickInterval: 100 * time.Millisecond, ObstacleCount: 0},
	game.DifficultyHard:   {TickInterval: 70 * time.Millisecond, ObstacleCount: 0},
}

var testLayout = Layout{CellSize: 1, CellWidth: 1}

// newTestModel builds a model on a 20x10 grid.
func newTestModel(t *testing.T) Model {
	t.Helper()
	return newSizedModel(t, 22, 14)
}

func newSizedModel(t *testing.T, w, h int) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: w, ScreenH: h}
	engine := game.NewEngine(game.Options{
		Grid:  testLayout.Grid(w, h),
		Tiers: obstacleFree,
		Seed:  7,
	})
	return NewModel(engine, testLayout, cfg, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, msg)
}

// liveTick returns a tick belonging to the model's current schedule.
func liveTick(m Model) TickMsg {
	return TickMsg{Gen: m.loop.gen, At: time.Now()}
}

func started(t *testing.T) Model {
	t.Helper()
	m, cmd := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Starting should arm a tick")
	}
	if m.Snapshot().Status != game.StatusRunning {
		t.Fatalf("Expected running after start, got %v", m.Snapshot().Status)
	}
	return m
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not schedule anything without auto-start")
	}
	if got := m.Snapshot().Status; got != game.StatusIdle {
		t.Errorf("Expected idle, got %v", got)
	}

	// ticks before start are ignored
	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd != nil || m.Snapshot().Tick != 0 {
		t.Error("Tick before start should be ignored")
	}
}

func TestModelAutoStart(t *testing.T) {
	m := newTestModel(t).WithAutoStart()

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should request a start")
	}
	m, tickCmd := update(t, m, cmd())
	if tickCmd == nil {
		t.Error("Start should arm a tick")
	}
	if got := m.Snapshot().Status; got != game.StatusRunning {
		t.Errorf("Expected running, got %v", got)
	}
}

func TestModelTickAdvancesAndRearms(t *testing.T) {
	m := started(t)
	head := m.Snapshot().Snake[0]

	m, cmd := update(t, m, liveTick(m))
	if cmd == nil {
		t.Error("A running game should re-arm after each tick")
	}

	snap := m.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("Expected 1 tick, got %d", snap.Tick)
	}
	if want := (game.Cell{X: head.X + 1, Y: head.Y}); snap.Snake[0] != want {
		t.Errorf("Head = %v, expected %v", snap.Snake[0], want)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := started(t)
	stale := liveTick(m)

	m, _ = update(t, m, stale)
	m, cmd := update(t, m, stale)
	if cmd != nil {
		t.Error("A stale tick should not re-arm")
	}
	if got := m.Snapshot().Tick; got != 1 {
		t.Errorf("Stale tick should not advance the game, ticks = %d", got)
	}
}

func TestModelSteer(t *testing.T) {
	m := started(t)
	head := m.Snapshot().Snake[0]

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, liveTick(m))

	snap := m.Snapshot()
	if want := (game.Cell{X: head.X, Y: head.Y - 1}); snap.Snake[0] != want {
		t.Errorf("Head = %v, expected %v", snap.Snake[0], want)
	}
	if snap.Direction != game.Up {
		t.Errorf("Direction = %v, expected up", snap.Direction)
	}

	// reversing is rejected
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, liveTick(m))
	if got := m.Snapshot().Direction; got != game.Up {
		t.Errorf("Reverse input should be ignored, direction = %v", got)
	}
}

func TestModelPauseResume(t *testing.T) {
	m := started(t)
	before := liveTick(m)

	m, cmd := press(t, m, runeKey('p'))
	if cmd != nil {
		t.Error("Pausing should not schedule anything")
	}
	if got := m.Snapshot().Status; got != game.StatusPaused {
		t.Fatalf("Expected paused, got %v", got)
	}

	m, _ = update(t, m, before)
	if got := m.Snapshot().Tick; got != 0 {
		t.Errorf("Tick armed before pause should be dropped, ticks = %d", got)
	}

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Error("Resuming should arm a tick")
	}
	if got := m.Snapshot().Status; got != game.StatusRunning {
		t.Fatalf("Expected running, got %v", got)
	}

	m, _ = update(t, m, before)
	if got := m.Snapshot().Tick; got != 0 {
		t.Errorf("Tick from before the pause should still be dropped, ticks = %d", got)
	}
	m, _ = update(t, m, liveTick(m))
	if got := m.Snapshot().Tick; got != 1 {
		t.Errorf("Tick after resume should advance, ticks = %d", got)
	}
}

func TestModelDifficultyHotkeys(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, runeKey('1'))
	if cmd != nil {
		t.Error("Changing difficulty while idle should not arm a tick")
	}
	if got := m.Snapshot().Difficulty; got != game.DifficultyEasy {
		t.Errorf("Expected easy, got %v", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	old := liveTick(m)

	m, cmd = press(t, m, runeKey('3'))
	if cmd == nil {
		t.Error("Changing difficulty while running should re-arm")
	}
	if got := m.Snapshot().Difficulty; got != game.DifficultyHard {
		t.Errorf("Expected hard, got %v", got)
	}

	m, _ = update(t, m, old)
	if got := m.Snapshot().Tick; got != 0 {
		t.Errorf("Tick from the old interval should be dropped, ticks = %d", got)
	}

	_, cmd = press(t, m, runeKey('3'))
	if cmd != nil {
		t.Error("Selecting the active tier should be a no-op")
	}
}

func TestModelCycleColor(t *testing.T) {
	m := newTestModel(t)
	before := m.Snapshot().Color

	m, _ = press(t, m, runeKey('c'))
	if got := m.Snapshot().Color; got != core.NextInPalette(before) {
		t.Errorf("Color = %v, expected %v", got, core.NextInPalette(before))
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := started(t)
	m, _ = update(t, m, liveTick(m))
	before := m.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 32, Height: 24})
	after := m.Snapshot()

	if after.Grid != (game.Grid{Width: 30, Height: 20}) {
		t.Errorf("Grid = %+v, expected 30x20", after.Grid)
	}
	if after.Status != game.StatusRunning || after.RunID != before.RunID {
		t.Error("Resize should not reset the run")
	}
	if len(after.Snake) != len(before.Snake) || after.Snake[0] != before.Snake[0] {
		t.Error("Resize should not move the snake")
	}
}

func TestModelResizeTooSmallPauses(t *testing.T) {
	m := started(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 4})
	if got := m.Snapshot().Status; got != game.StatusPaused {
		t.Errorf("Expected paused on an empty grid, got %v", got)
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("View should explain the window is too small")
	}
}

func TestModelStartTooSmall(t *testing.T) {
	m := newSizedModel(t, 3, 5) // 1x1 grid

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("A failed start should not arm a tick")
	}
	if !errors.Is(m.Err(), game.ErrGridTooSmall) {
		t.Errorf("Expected ErrGridTooSmall, got %v", m.Err())
	}
	if got := m.Snapshot().Status; got != game.StatusIdle {
		t.Errorf("Failed start should leave the game idle, got %v", got)
	}
}

func TestModelGameOverStopsTicking(t *testing.T) {
	m := newSizedModel(t, 5, 5) // 3x1 grid fills up within three ticks
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	var cmd tea.Cmd
	for range 5 {
		if m.Snapshot().Status != game.StatusRunning {
			break
		}
		last := liveTick(m)
		m, cmd = update(t, m, last)
	}

	if got := m.Snapshot().Status; got != game.StatusOver {
		t.Fatalf("Expected over once the board fills, got %v", got)
	}
	if cmd != nil {
		t.Error("Game over should not re-arm")
	}
	if !errors.Is(m.Err(), game.ErrPlacementExhausted) {
		t.Errorf("Expected ErrPlacementExhausted, got %v", m.Err())
	}

	ticks := m.Snapshot().Tick
	m, _ = update(t, m, liveTick(m))
	if m.Snapshot().Tick != ticks {
		t.Error("A finished game should ignore ticks")
	}

	// restart clears the error
	m, cmd = press(t, m, runeKey('r'))
	if cmd == nil || m.Err() != nil {
		t.Error("Restart should arm a tick and clear the last error")
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := started(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("Back should be ignored while running")
	}

	m, _ = press(t, m, runeKey('p'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Back should be accepted while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := started(t)

	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("Expected quitting")
	}
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	for _, want := range []string{"SNAKE", "Press Enter to start", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("Idle view should contain %q", want)
		}
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runeKey('p'))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("Paused view should show the pause banner")
	}
}
