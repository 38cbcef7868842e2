package game

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is a named tier bundling tick speed and obstacle pressure.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyNormal
	DifficultyHard
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// ParseDifficulty accepts a tier name ("easy", "normal", "hard") or its
// number ("1", "2", "3").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1", "tier1":
		return DifficultyEasy, nil
	case "normal", "2", "tier2":
		return DifficultyNormal, nil
	case "hard", "3", "tier3":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("game: unknown difficulty %q", s)
}

// TierSettings is what a difficulty tier controls.
type TierSettings struct {
	TickInterval  time.Duration // time between ticks
	ObstacleCount int           // obstacles placed at start and per 5 points
}

// Tiers maps every difficulty to its settings.
type Tiers map[Difficulty]TierSettings

// DefaultTiers returns the built-in tier table.
func DefaultTiers() Tiers {
	return Tiers{
		DifficultyEasy:   {TickInterval: 150 * time.Millisecond, ObstacleCount: 3},
		DifficultyNormal: {TickInterval: 100 * time.Millisecond, ObstacleCount: 5},
		DifficultyHard:   {TickInterval: 70 * time.Millisecond, ObstacleCount: 8},
	}
}

// Settings returns the settings for d, falling back to the built-in table
// for tiers missing from t.
func (t Tiers) Settings(d Difficulty) TierSettings {
	if s, ok := t[d]; ok {
		return s
	}
	return DefaultTiers()[d]
}

// Validate checks that every tier is present and usable.
func (t Tiers) Validate() error {
	for _, d := range Difficulties {
		s, ok := t[d]
		if !ok {
			return fmt.Errorf("game: tier %s is not configured", d)
		}
		if s.TickInterval <= 0 {
			return fmt.Errorf("game: tier %s: tick interval must be positive, got %s", d, s.TickInterval)
		}
		if s.ObstacleCount < 0 {
			return fmt.Errorf("game: tier %s: obstacle count must not be negative, got %d", d, s.ObstacleCount)
		}
	}
	return nil
}
