package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default engine configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			GravityInterval:  1.0,
			FastFallInterval: 0.05,
		},
		Leveling: LevelingConfig{
			Enabled:       true,
			StartLevel:    1,
			LinesPerLevel: 10,
			SpeedFactor:   0.85,
			MinInterval:   0.05,
		},
		Randomizer: RandomizerConfig{
			Policy: "bag",
		},
	}
}
