package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hard-coded configuration of the reference
// game: a 500x900 area with 30 pixel blocks (16x30 cells).
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			AreaWidth:  500,
			AreaHeight: 900,
			BlockSize:  30,
		},
		Timing: TimingConfig{
			PlayTickRate: 7,
			MenuTickRate: 15,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
