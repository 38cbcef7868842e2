package game

import "slices"

// Status is the lifecycle phase of a game.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// active reports whether a run is in progress.
func (s Status) active() bool {
	return s == StatusRunning || s == StatusPaused
}

// State is one immutable frame of the game. Transitions build a new State
// and never write into the slices of an existing one, so a State can be
// shared freely once created.
type State struct {
	Snake     []Cell // head first
	Direction Direction
	Food      Cell
	Obstacles []Cell
	Score     int
	Status    Status
}

// Head returns the first snake cell.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Snake = slices.Clone(s.Snake)
	s.Obstacles = slices.Clone(s.Obstacles)
	return s
}

// CellSet is an unordered set of cells used for occupancy checks.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from any number of cell slices.
func NewCellSet(groups ...[]Cell) CellSet {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	set := make(CellSet, n)
	for _, g := range groups {
		for _, c := range g {
			set[c] = struct{}{}
		}
	}
	return set
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c into the set.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}
