package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded snake configuration, used when
// the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			CellSize:  1,
			CellWidth: 2,
		},
		Difficulty: DifficultyConfig{
			Default: "normal",
			Tiers: map[string]TierConfig{
				"easy":   {TickMs: 150, Obstacles: 3},
				"normal": {TickMs: 100, Obstacles: 5},
				"hard":   {TickMs: 70, Obstacles: 8},
			},
		},
		Appearance: AppearanceConfig{
			SnakeColor: "bright-green",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
