package game

import "fmt"

// ObstacleMilestone is the score step at which a new obstacle batch appears.
const ObstacleMilestone = 5

// Step advances a running state by one tick and returns the next state.
// It never modifies s. States that are not running are returned as they are.
//
// The self-collision check runs against the snake before its tail moves, so
// stepping into the cell the tail is about to vacate still ends the game.
// On a placement error the pre-tick state is returned with the error.
func Step(s State, g Grid, tier TierSettings, sp *Spawner) (State, error) {
	if s.Status != StatusRunning || len(s.Snake) == 0 {
		return s, nil
	}

	newHead := g.Wrap(s.Head().Add(s.Direction))

	if hits(s.Obstacles, newHead) || hits(s.Snake, newHead) {
		over := s
		over.Status = StatusOver
		return over, nil
	}

	next := s
	snake := make([]Cell, 0, len(s.Snake)+1)
	snake = append(snake, newHead)
	snake = append(snake, s.Snake...)

	if newHead != s.Food {
		next.Snake = snake[:len(snake)-1]
		return next, nil
	}

	next.Snake = snake
	next.Score = s.Score + 1

	food, err := sp.PlaceFood(g, next.Snake, s.Obstacles)
	if err != nil {
		return s, fmt.Errorf("game: placing food: %w", err)
	}
	next.Food = food

	if next.Score%ObstacleMilestone == 0 {
		batch, err := sp.PlaceObstacles(g, tier.ObstacleCount, next.Snake, next.Food, s.Obstacles)
		if err != nil {
			return s, fmt.Errorf("game: placing obstacles at score %d: %w", next.Score, err)
		}
		obstacles := make([]Cell, 0, len(s.Obstacles)+len(batch))
		obstacles = append(obstacles, s.Obstacles...)
		next.Obstacles = append(obstacles, batch...)
	}

	return next, nil
}

// hits reports whether c is one of cells.
func hits(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
