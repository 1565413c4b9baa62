package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadCrossy loads the game configuration.
// Search order: customPath -> ~/.crossy/configs/crossy.yaml -> ./configs/crossy.yaml -> embedded default
func LoadCrossy(customPath string) (CrossyConfig, error) {
	// Unset keys in a partial file keep their default values.
	cfg := DefaultCrossyConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("crossy.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "crossy.yaml")); ok {
		return loaded, nil
	}

	if err := yaml.Unmarshal(defaultCrossyYAML, &cfg); err != nil {
		return DefaultCrossyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, malformed or invalid files
// are skipped so the next location in the search order is used.
func tryLoad(path string) (CrossyConfig, bool) {
	cfg := DefaultCrossyConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossy", "configs", filename)
}

// ApplyCrossyPreset modifies the config based on a difficulty preset.
func ApplyCrossyPreset(cfg *CrossyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate checks that obstacle placement can always terminate and that the
// board has room to move.
func (c CrossyConfig) Validate() error {
	b := c.Board
	if b.Columns < 3 {
		return fmt.Errorf("%w: board.columns must be at least 3, got %d", ErrInvalidConfig, b.Columns)
	}
	if b.PositionWidth <= 0 || b.Zoom <= 0 {
		return fmt.Errorf("%w: board.position_width and board.zoom must be positive", ErrInvalidConfig)
	}
	if b.StepTimeMS <= 0 {
		return fmt.Errorf("%w: board.step_time_ms must be positive", ErrInvalidConfig)
	}
	if b.LanesBehind < 0 || b.LanesAhead < 1 {
		return fmt.Errorf("%w: board.lanes_ahead must be at least 1 and lanes_behind non-negative", ErrInvalidConfig)
	}
	if len(c.Traffic.Speeds) == 0 {
		return fmt.Errorf("%w: traffic.speeds must not be empty", ErrInvalidConfig)
	}
	if c.Traffic.Cars < 0 || c.Traffic.Cars > b.Columns/2 {
		return fmt.Errorf("%w: traffic.cars must be in [0, %d], got %d", ErrInvalidConfig, b.Columns/2, c.Traffic.Cars)
	}
	if c.Traffic.Trucks < 0 || c.Traffic.Trucks > b.Columns/3 {
		return fmt.Errorf("%w: traffic.trucks must be in [0, %d], got %d", ErrInvalidConfig, b.Columns/3, c.Traffic.Trucks)
	}
	for _, name := range c.Traffic.Colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: traffic.colors: unknown colour %q", ErrInvalidConfig, name)
		}
	}
	// A full forest lane would wall the player in.
	if c.Forest.Trees < 0 || c.Forest.Trees >= b.Columns {
		return fmt.Errorf("%w: forest.trees must be in [0, %d), got %d", ErrInvalidConfig, b.Columns, c.Forest.Trees)
	}
	if c.Player.Size <= 0 {
		return fmt.Errorf("%w: player.size must be positive", ErrInvalidConfig)
	}
	return nil
}
