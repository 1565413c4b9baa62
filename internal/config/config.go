// Package config provides YAML-based game configuration loading and
// difficulty management for the crossing game.
package config

// CrossyConfig contains all configuration for the lane-crossing game.
// Distances are in board units before zoom is applied.
type CrossyConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Traffic    TrafficConfig    `yaml:"traffic"`
	Forest     ForestConfig     `yaml:"forest"`
	Player     PlayerConfig     `yaml:"player"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board geometry and step timing.
type BoardConfig struct {
	Columns       int     `yaml:"columns"`
	PositionWidth float64 `yaml:"position_width"` // width of one column and depth of one lane
	Zoom          float64 `yaml:"zoom"`
	StepTimeMS    float64 `yaml:"step_time_ms"`
	HopHeight     float64 `yaml:"hop_height"`
	LanesBehind   int     `yaml:"lanes_behind"` // negative indices generated (and discarded) at init
	LanesAhead    int     `yaml:"lanes_ahead"`
}

// TrafficConfig defines road lane population and vehicle sizes.
type TrafficConfig struct {
	Speeds      []float64 `yaml:"speeds"`
	Cars        int       `yaml:"cars"`
	Trucks      int       `yaml:"trucks"`
	CarLength   float64   `yaml:"car_length"`
	TruckLength float64   `yaml:"truck_length"`
	Colors      []string  `yaml:"colors"`
}

// ForestConfig defines forest lane population.
type ForestConfig struct {
	Trees   int       `yaml:"trees"`
	Heights []float64 `yaml:"heights"`
}

// PlayerConfig defines the player's hitbox.
type PlayerConfig struct {
	Size float64 `yaml:"size"`
}

// SessionConfig defines session lifecycle timings.
type SessionConfig struct {
	RetryDelayMS float64 `yaml:"retry_delay_ms"`
}

// BoardWidth returns the unzoomed width of the board.
func (b BoardConfig) BoardWidth() float64 {
	return b.PositionWidth * float64(b.Columns)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lane index / ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to lane speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
