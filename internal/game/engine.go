package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridTooSmall is returned by Start when the grid cannot hold the snake,
// the food and the tier's obstacle batch.
var ErrGridTooSmall = errors.New("game: grid too small for the selected difficulty")

// Options configures a new Engine.
type Options struct {
	Grid       Grid
	Tiers      Tiers // nil means DefaultTiers
	Difficulty Difficulty
	Color      core.Color
	Seed       int64
}

// Engine owns the game state and the transitions between its phases:
// idle -> running -> (paused <-> running) -> over -> running.
//
// Engine is not safe for concurrent use; a frontend drives it from a single
// event loop.
type Engine struct {
	grid       Grid
	tiers      Tiers
	difficulty Difficulty
	color      core.Color
	spawner    *Spawner

	state   State
	pending Direction
	ticks   uint64
	runID   string
}

// NewEngine creates an idle engine.
func NewEngine(opts Options) *Engine {
	tiers := opts.Tiers
	if tiers == nil {
		tiers = DefaultTiers()
	}
	difficulty := opts.Difficulty
	if !difficulty.Valid() {
		difficulty = DifficultyNormal
	}
	color := opts.Color
	if color == core.ColorDefault {
		color = core.SnakePalette[0]
	}

	return &Engine{
		grid:       opts.Grid,
		tiers:      tiers,
		difficulty: difficulty,
		color:      color,
		spawner:    NewSpawner(opts.Seed),
		state:      State{Direction: Right, Status: StatusIdle},
		pending:    Right,
	}
}

// Start resets the snake, score, food and obstacles and begins a new run.
// It is valid from every status. On error the engine is left untouched.
func (e *Engine) Start() error {
	tier := e.tiers.Settings(e.difficulty)
	if e.grid.Empty() || e.grid.Capacity() < 2+tier.ObstacleCount {
		return fmt.Errorf("%w: %dx%d grid, %d obstacles", ErrGridTooSmall, e.grid.Width, e.grid.Height, tier.ObstacleCount)
	}

	snake := []Cell{e.grid.Center()}
	food, err := e.spawner.PlaceFood(e.grid, snake, nil)
	if err != nil {
		return fmt.Errorf("game: starting run: %w", err)
	}
	obstacles, err := e.spawner.PlaceObstacles(e.grid, tier.ObstacleCount, snake, food, nil)
	if err != nil {
		return fmt.Errorf("game: starting run: %w", err)
	}

	e.state = State{
		Snake:     snake,
		Direction: Right,
		Food:      food,
		Obstacles: obstacles,
		Score:     0,
		Status:    StatusRunning,
	}
	e.pending = Right
	e.ticks = 0
	e.runID = uuid.NewString()
	return nil
}

// Pause stops a running game. It reports whether the status changed.
func (e *Engine) Pause() bool {
	if e.state.Status != StatusRunning {
		return false
	}
	e.state.Status = StatusPaused
	return true
}

// Resume continues a paused game. It reports whether the status changed.
func (e *Engine) Resume() bool {
	if e.state.Status != StatusPaused {
		return false
	}
	e.state.Status = StatusRunning
	return true
}

// Steer records d as the direction for the next tick if it changes the axis
// of motion. Only running games accept steering.
func (e *Engine) Steer(d Direction) bool {
	if e.state.Status != StatusRunning {
		return false
	}
	next, ok := Steer(e.state.Direction, d)
	if ok {
		e.pending = next
	}
	return ok
}

// Tick advances a running game by one step. Other statuses are left as they are.
// A placement error ends the run with the pre-tick entities intact.
func (e *Engine) Tick() error {
	if e.state.Status != StatusRunning {
		return nil
	}

	current := e.state
	current.Direction = e.pending

	next, err := Step(current, e.grid, e.tiers.Settings(e.difficulty), e.spawner)
	if err != nil {
		e.state.Status = StatusOver
		return err
	}
	if next.Status == StatusOver {
		// entities freeze at their pre-tick value
		next = e.state
		next.Status = StatusOver
	}

	e.state = next
	e.ticks++
	return nil
}

// SetDifficulty switches the tier. The new tick interval applies from the next
// scheduled tick and the new obstacle count from the next batch. It reports
// whether the tier changed.
func (e *Engine) SetDifficulty(d Difficulty) bool {
	if !d.Valid() || d == e.difficulty {
		return false
	}
	e.difficulty = d
	return true
}

// SetColor changes the snake color used by frontends.
func (e *Engine) SetColor(c core.Color) {
	e.color = c
}

// Resize replaces the grid dimensions. A game in progress is not reset;
// snake cells outside the new bounds wrap back in on their next move.
// Food left outside the new bounds is placed again inside them.
func (e *Engine) Resize(g Grid) error {
	e.grid = g
	if !e.state.Status.active() || g.Empty() || g.Contains(e.state.Food) {
		return nil
	}

	food, err := e.spawner.PlaceFood(g, e.state.Snake, e.state.Obstacles)
	if err != nil {
		return fmt.Errorf("game: placing food after resize: %w", err)
	}
	e.state.Food = food
	return nil
}

// Status returns the current lifecycle phase.
func (e *Engine) Status() Status {
	return e.state.Status
}

// Difficulty returns the active tier.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Color returns the snake color.
func (e *Engine) Color() core.Color {
	return e.color
}

// Grid returns the current grid dimensions.
func (e *Engine) Grid() Grid {
	return e.grid
}

// TickInterval returns the wall-clock time between ticks for the active tier.
func (e *Engine) TickInterval() time.Duration {
	return e.tiers.Settings(e.difficulty).TickInterval
}

// Snapshot is a read-only copy of everything a frontend needs to draw a frame.
type Snapshot struct {
	Snake      []Cell
	Direction  Direction
	Food       Cell
	Obstacles  []Cell
	Score      int
	Status     Status
	Difficulty Difficulty
	Color      core.Color
	Grid       Grid
	Tick       uint64
	RunID      string
}

// Snapshot copies the current state. Mutating the result does not affect the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Snake:      slices.Clone(e.state.Snake),
		Direction:  e.state.Direction,
		Food:       e.state.Food,
		Obstacles:  slices.Clone(e.state.Obstacles),
		Score:      e.state.Score,
		Status:     e.state.Status,
		Difficulty: e.difficulty,
		Color:      e.color,
		Grid:       e.grid,
		Tick:       e.ticks,
		RunID:      e.runID,
	}
}
