// Package config provides YAML-based engine configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tetris-sim/internal/sim"
)

// TetrisConfig contains all configuration for the falling-block engine.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Leveling   LevelingConfig   `yaml:"leveling"`
	Randomizer RandomizerConfig `yaml:"randomizer"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity in seconds per row.
type TimingConfig struct {
	GravityInterval  float64 `yaml:"gravity_interval"`
	FastFallInterval float64 `yaml:"fast_fall_interval"`
}

// LevelingConfig defines how gravity speeds up as lines are cleared.
type LevelingConfig struct {
	Enabled       bool    `yaml:"enabled"`
	StartLevel    int     `yaml:"start_level"`
	LinesPerLevel int     `yaml:"lines_per_level"`
	SpeedFactor   float64 `yaml:"speed_factor"` // gravity multiplier per level, (0, 1]
	MinInterval   float64 `yaml:"min_interval"`
}

// RandomizerConfig selects the piece selection policy ("bag" or "uniform").
type RandomizerConfig struct {
	Policy string `yaml:"policy"`
}

// ToOptions converts the configuration into engine options.
// Range checks are left to sim.New; only names are resolved here.
func (c TetrisConfig) ToOptions() ([]sim.Option, error) {
	policy, ok := sim.ParsePolicy(c.Randomizer.Policy)
	if !ok {
		return nil, fmt.Errorf("config: unknown randomizer policy %q", c.Randomizer.Policy)
	}

	lv := c.Leveling
	speed := lv.SpeedFactor
	if !lv.Enabled {
		speed = 1
	}

	return []sim.Option{
		sim.WithSize(c.Board.Width, c.Board.Height),
		sim.WithGravity(c.Timing.GravityInterval, c.Timing.FastFallInterval),
		sim.WithLeveling(lv.StartLevel, lv.LinesPerLevel, speed, lv.MinInterval),
		sim.WithPolicy(policy),
	}, nil
}
