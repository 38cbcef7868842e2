package game

import (
	"errors"
	"math/rand"
)

// ErrPlacementExhausted is returned when no free cell is left for food or an obstacle.
var ErrPlacementExhausted = errors.New("game: no free cell left for placement")

// defaultSampleBudget bounds rejection sampling before falling back to a scan.
const defaultSampleBudget = 256

// Spawner places food and obstacles on random free cells.
type Spawner struct {
	rng          *rand.Rand
	sampleBudget int
}

// NewSpawner returns a spawner whose choices are fully determined by seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:          rand.New(rand.NewSource(seed)),
		sampleBudget: defaultSampleBudget,
	}
}

// PlaceRandomCell picks a uniformly random cell of g that is not in forbidden.
//
// It samples random cells and rejects forbidden ones. Once the sample budget
// is spent (a crowded grid) it enumerates the free cells and picks one of
// them, so the call always terminates. ErrPlacementExhausted means every
// cell is forbidden.
func (s *Spawner) PlaceRandomCell(g Grid, forbidden CellSet) (Cell, error) {
	if g.Empty() {
		return Cell{}, ErrPlacementExhausted
	}

	for range s.sampleBudget {
		c := Cell{X: s.rng.Intn(g.Width), Y: s.rng.Intn(g.Height)}
		if !forbidden.Has(c) {
			return c, nil
		}
	}

	var free []Cell
	for y := range g.Height {
		for x := range g.Width {
			c := Cell{X: x, Y: y}
			if !forbidden.Has(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrPlacementExhausted
	}
	return free[s.rng.Intn(len(free))], nil
}

// PlaceFood picks a food cell off the snake and the obstacles.
func (s *Spawner) PlaceFood(g Grid, snake, obstacles []Cell) (Cell, error) {
	return s.PlaceRandomCell(g, NewCellSet(snake, obstacles))
}

// PlaceObstacles returns n distinct new obstacle cells that avoid the snake,
// the food and every obstacle in existing.
func (s *Spawner) PlaceObstacles(g Grid, n int, snake []Cell, food Cell, existing []Cell) ([]Cell, error) {
	forbidden := NewCellSet(snake, existing, []Cell{food})
	batch := make([]Cell, 0, n)
	for range n {
		c, err := s.PlaceRandomCell(g, forbidden)
		if err != nil {
			return nil, err
		}
		forbidden.Add(c)
		batch = append(batch, c)
	}
	return batch, nil
}
