package config

import (
	_ "embed"
)

//go:embed defaults/crossy.yaml
var defaultCrossyYAML []byte

// DefaultCrossyConfig returns the built-in configuration.
// It mirrors defaults/crossy.yaml and is used if the embedded file cannot be parsed.
func DefaultCrossyConfig() CrossyConfig {
	return CrossyConfig{
		Board: BoardConfig{
			Columns:       17,
			PositionWidth: 42,
			Zoom:          2,
			StepTimeMS:    200,
			HopHeight:     8,
			LanesBehind:   13,
			LanesAhead:    13,
		},
		Traffic: TrafficConfig{
			Speeds:      []float64{2, 2.5, 3},
			Cars:        3,
			Trucks:      2,
			CarLength:   60,
			TruckLength: 105,
			Colors:      []string{"blue", "yellow", "orange", "red"},
		},
		Forest: ForestConfig{
			Trees:   4,
			Heights: []float64{20, 45, 60},
		},
		Player: PlayerConfig{
			Size: 15,
		},
		Session: SessionConfig{
			RetryDelayMS: 2000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossyYAML
}
