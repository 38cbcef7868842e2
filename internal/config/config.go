// Package config provides YAML-based game configuration loading and
// difficulty tier management for the snake game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// GridConfig defines how the terminal maps onto the game grid.
type GridConfig struct {
	CellSize  int `yaml:"cell_size"`  // terminal cells per grid cell on each axis
	CellWidth int `yaml:"cell_width"` // columns drawn per grid cell
}

// AppearanceConfig defines presentation defaults.
type AppearanceConfig struct {
	SnakeColor string `yaml:"snake_color"`
}

// Validate checks every section and reports the first problem found.
func (c SnakeConfig) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: grid.cell_size must be positive, got %d", c.Grid.CellSize)
	}
	if c.Grid.CellWidth <= 0 {
		return fmt.Errorf("config: grid.cell_width must be positive, got %d", c.Grid.CellWidth)
	}
	if _, err := c.Difficulty.Tiers(); err != nil {
		return err
	}
	if _, err := c.Difficulty.DefaultTier(); err != nil {
		return err
	}
	if _, err := c.SnakeColor(); err != nil {
		return err
	}
	return nil
}

// SnakeColor resolves the configured snake color.
func (c SnakeConfig) SnakeColor() (core.Color, error) {
	color, err := core.ParseColor(c.Appearance.SnakeColor)
	if err != nil {
		return core.ColorDefault, fmt.Errorf("config: appearance.snake_color: %w", err)
	}
	return color, nil
}

// EngineOptions builds game engine options for the given grid and seed.
// The config must have passed Validate.
func (c SnakeConfig) EngineOptions(grid game.Grid, seed int64) (game.Options, error) {
	tiers, err := c.Difficulty.Tiers()
	if err != nil {
		return game.Options{}, err
	}
	difficulty, err := c.Difficulty.DefaultTier()
	if err != nil {
		return game.Options{}, err
	}
	color, err := c.SnakeColor()
	if err != nil {
		return game.Options{}, err
	}
	return game.Options{
		Grid:       grid,
		Tiers:      tiers,
		Difficulty: difficulty,
		Color:      color,
		Seed:       seed,
	}, nil
}
