package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultSnakeConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("Embedded YAML and DefaultSnakeConfig() differ:\n%+v\n%+v", got, want)
	}
	if len(DefaultYAML()) == 0 {
		t.Error("Embedded default YAML should not be empty")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}

	tiers, err := cfg.Difficulty.Tiers()
	if err != nil {
		t.Fatalf("Tiers() failed: %v", err)
	}
	if !reflect.DeepEqual(tiers, game.DefaultTiers()) {
		t.Errorf("Default YAML tiers differ from game.DefaultTiers(): %+v", tiers)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("Expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("difficulty:\n  default: easy\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Difficulty.Default != "easy" {
		t.Errorf("User config should set default tier to easy, got %q", cfg.Difficulty.Default)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := writeConfig(t, `
difficulty:
  default: hard
appearance:
  snake_color: orange
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	tier, err := cfg.Difficulty.DefaultTier()
	if err != nil || tier != game.DifficultyHard {
		t.Errorf("DefaultTier() = %v, %v; expected hard", tier, err)
	}
	color, err := cfg.SnakeColor()
	if err != nil || color != core.ColorOrange {
		t.Errorf("SnakeColor() = %v, %v; expected orange", color, err)
	}
	if cfg.Grid.CellWidth != 2 {
		t.Errorf("Unset keys should keep defaults, cell_width = %d", cfg.Grid.CellWidth)
	}
}

func TestLoadCustomTiers(t *testing.T) {
	path := writeConfig(t, `
difficulty:
  tiers:
    easy:   {tick_ms: 200, obstacles: 1}
    normal: {tick_ms: 120, obstacles: 2}
    hard:   {tick_ms: 50,  obstacles: 12}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	tiers, err := cfg.Difficulty.Tiers()
	if err != nil {
		t.Fatalf("Tiers() failed: %v", err)
	}

	hard := tiers[game.DifficultyHard]
	if hard.TickInterval != 50*time.Millisecond || hard.ObstacleCount != 12 {
		t.Errorf("Hard tier = %+v, expected 50ms / 12 obstacles", hard)
	}
}

func TestLoadTierAlias(t *testing.T) {
	path := writeConfig(t, `
difficulty:
  tiers:
    tier1: {tick_ms: 200, obstacles: 2}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("An alias should replace the default tier, got %v", err)
	}
	tiers, err := cfg.Difficulty.Tiers()
	if err != nil {
		t.Fatalf("Tiers() failed: %v", err)
	}

	easy := tiers[game.DifficultyEasy]
	if easy.TickInterval != 200*time.Millisecond || easy.ObstacleCount != 2 {
		t.Errorf("Easy tier = %+v, expected 200ms / 2 obstacles", easy)
	}
	if tiers[game.DifficultyHard] != game.DefaultTiers()[game.DifficultyHard] {
		t.Errorf("Unnamed tiers should keep defaults, hard = %+v", tiers[game.DifficultyHard])
	}
}

func TestTiersRejectsDuplicates(t *testing.T) {
	d := DifficultyConfig{
		Default: "normal",
		Tiers: map[string]TierConfig{
			"easy":   {TickMs: 150, Obstacles: 3},
			"tier1":  {TickMs: 120, Obstacles: 3},
			"normal": {TickMs: 100, Obstacles: 5},
			"hard":   {TickMs: 70, Obstacles: 8},
		},
	}

	_, err := d.Tiers()
	if err == nil || !strings.Contains(err.Error(), "given twice") {
		t.Errorf("Expected a duplicate tier error, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "difficulty: [unclosed"},
		{"unknown default tier", "difficulty:\n  default: insane\n"},
		{"unknown tier name", "difficulty:\n  tiers:\n    insane: {tick_ms: 10, obstacles: 1}\n"},
		{"zero tick", "difficulty:\n  tiers:\n    easy: {tick_ms: 0, obstacles: 1}\n"},
		{"negative obstacles", "difficulty:\n  tiers:\n    easy: {tick_ms: 100, obstacles: -2}\n"},
		{"bad color", "appearance:\n  snake_color: plaid\n"},
		{"bad cell size", "grid:\n  cell_size: 0\n"},
		{"duplicate tier", "difficulty:\n  tiers:\n    easy: {tick_ms: 150, obstacles: 3}\n    tier1: {tick_ms: 90, obstacles: 4}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Errorf("Load() should fail for %s", tc.name)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestOverrides(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if err := ApplyDifficultyOverride(&cfg, "3"); err != nil {
		t.Fatalf("ApplyDifficultyOverride() failed: %v", err)
	}
	if cfg.Difficulty.Default != "hard" {
		t.Errorf("Default tier = %q, expected hard", cfg.Difficulty.Default)
	}
	if err := ApplyDifficultyOverride(&cfg, "extreme"); err == nil {
		t.Error("Unknown difficulty override should fail")
	}
	if err := ApplyDifficultyOverride(&cfg, ""); err != nil || cfg.Difficulty.Default != "hard" {
		t.Error("Empty override should leave the config unchanged")
	}

	if err := ApplyColorOverride(&cfg, "bright-cyan"); err != nil {
		t.Fatalf("ApplyColorOverride() failed: %v", err)
	}
	if err := ApplyColorOverride(&cfg, "plaid"); err == nil {
		t.Error("Unknown color override should fail")
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultSnakeConfig()
	grid := game.Grid{Width: 30, Height: 20}

	opts, err := cfg.EngineOptions(grid, 42)
	if err != nil {
		t.Fatalf("EngineOptions() failed: %v", err)
	}
	if opts.Grid != grid || opts.Seed != 42 {
		t.Errorf("Grid/seed not passed through: %+v", opts)
	}
	if opts.Difficulty != game.DifficultyNormal || opts.Color != core.ColorBrightGreen {
		t.Errorf("Unexpected difficulty/color: %v / %v", opts.Difficulty, opts.Color)
	}
}
