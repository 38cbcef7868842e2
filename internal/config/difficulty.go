package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// DifficultyConfig defines the tier table and the tier to start with.
type DifficultyConfig struct {
	Default string                `yaml:"default"`
	Tiers   map[string]TierConfig `yaml:"tiers"`
}

// TierConfig is one tier as written in YAML.
type TierConfig struct {
	TickMs    int `yaml:"tick_ms"`
	Obstacles int `yaml:"obstacles"`
}

// Tiers converts the YAML tier table into game tiers and validates it.
func (d DifficultyConfig) Tiers() (game.Tiers, error) {
	tiers := make(game.Tiers, len(d.Tiers))
	for name, tc := range d.Tiers {
		diff, err := game.ParseDifficulty(name)
		if err != nil {
			return nil, fmt.Errorf("config: difficulty.tiers: %w", err)
		}
		if _, dup := tiers[diff]; dup {
			return nil, fmt.Errorf("config: difficulty.tiers: tier %s given twice", diff)
		}
		tiers[diff] = game.TierSettings{
			TickInterval:  time.Duration(tc.TickMs) * time.Millisecond,
			ObstacleCount: tc.Obstacles,
		}
	}
	if err := tiers.Validate(); err != nil {
		return nil, fmt.Errorf("config: difficulty.tiers: %w", err)
	}
	return tiers, nil
}

// DefaultTier resolves the configured starting tier.
func (d DifficultyConfig) DefaultTier() (game.Difficulty, error) {
	diff, err := game.ParseDifficulty(d.Default)
	if err != nil {
		return 0, fmt.Errorf("config: difficulty.default: %w", err)
	}
	return diff, nil
}

// ApplyDifficultyOverride replaces the starting tier, typically from a CLI flag.
// An empty name leaves the config unchanged.
func ApplyDifficultyOverride(cfg *SnakeConfig, name string) error {
	if name == "" {
		return nil
	}
	diff, err := game.ParseDifficulty(name)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Difficulty.Default = diff.String()
	return nil
}

// ApplyColorOverride replaces the snake color, typically from a CLI flag.
// An empty name leaves the config unchanged.
func ApplyColorOverride(cfg *SnakeConfig, name string) error {
	if name == "" {
		return nil
	}
	color, err := core.ParseColor(name)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Appearance.SnakeColor = color.String()
	return nil
}

// mergeTiers returns the file's tiers plus every default tier the file does
// not name under any of its aliases.
func mergeTiers(file, defaults map[string]TierConfig) map[string]TierConfig {
	named := make(map[game.Difficulty]bool, len(file))
	for name := range file {
		if diff, err := game.ParseDifficulty(name); err == nil {
			named[diff] = true
		}
	}

	merged := make(map[string]TierConfig, len(file)+len(defaults))
	for name, tc := range file {
		merged[name] = tc
	}
	for name, tc := range defaults {
		diff, err := game.ParseDifficulty(name)
		if err == nil && named[diff] {
			continue
		}
		merged[name] = tc
	}
	return merged
}
