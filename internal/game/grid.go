// Package game implements the snake rules: a toroidal grid, the snake, food
// and obstacle placement, the per-tick transition and the start/pause/over
// state machine. It has no terminal dependencies; frontends drive it through
// Engine and draw from Snapshot.
package game

// Cell is a discrete grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d, without wrapping.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Grid is the fixed-size coordinate space the game is played on.
type Grid struct {
	Width  int
	Height int
}

// ComputeGrid derives the grid from viewport dimensions, flooring the division.
// A non-positive cellSize is treated as 1.
func ComputeGrid(viewportW, viewportH, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Grid{
		Width:  max(viewportW, 0) / cellSize,
		Height: max(viewportH, 0) / cellSize,
	}
}

// Capacity returns the number of cells on the grid.
func (g Grid) Capacity() int {
	return g.Width * g.Height
}

// Empty reports whether the grid has no cells at all.
func (g Grid) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Wrap applies toroidal wraparound to each axis independently: a coordinate
// below zero moves to the last row/column, one at or past the edge moves to zero.
func (g Grid) Wrap(c Cell) Cell {
	switch {
	case c.X < 0:
		c.X = g.Width - 1
	case c.X >= g.Width:
		c.X = 0
	}
	switch {
	case c.Y < 0:
		c.Y = g.Height - 1
	case c.Y >= g.Height:
		c.Y = 0
	}
	return c
}
