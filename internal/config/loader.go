package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "snake.yaml"

// Load loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are applied over the defaults, so they only need the keys they change.
func Load(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		return loadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", configFileName)); err == nil {
		return cfg, nil
	}

	return embeddedDefault(), nil
}

// loadFile reads, merges and validates a config file.
func loadFile(path string) (SnakeConfig, error) {
	cfg := embeddedDefault()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	// tiers are merged by difficulty, not by key, so "tier1" replaces "easy"
	defaultTiers := cfg.Difficulty.Tiers
	cfg.Difficulty.Tiers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.Difficulty.Tiers = mergeTiers(cfg.Difficulty.Tiers, defaultTiers)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// embeddedDefault parses the embedded default YAML.
func embeddedDefault() SnakeConfig {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSnakeConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
