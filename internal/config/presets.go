package config

import "fmt"

// BoardPreset names a predefined playfield size.
type BoardPreset string

const (
	BoardClassic  BoardPreset = "classic"  // 16x30, the 500x900 layout
	BoardStandard BoardPreset = "standard" // 10x20
	BoardSmall    BoardPreset = "small"    // 8x16, fits an 80x24 terminal
)

// BoardPresets lists the presets in display order.
func BoardPresets() []BoardPreset {
	return []BoardPreset{BoardClassic, BoardStandard, BoardSmall}
}

// ParseBoardPreset validates a preset name. The empty string means no preset.
func ParseBoardPreset(name string) (BoardPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range BoardPresets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown board preset %q (want classic, standard or small)", name)
}

// ApplyBoardPreset overrides the board geometry with a preset.
// An empty preset leaves the config untouched.
func ApplyBoardPreset(cfg *TetrisConfig, preset BoardPreset) {
	switch preset {
	case BoardClassic:
		cfg.Board = DefaultTetrisConfig().Board
	case BoardStandard:
		cfg.Board = BoardConfig{AreaWidth: 300, AreaHeight: 600, BlockSize: 30}
	case BoardSmall:
		cfg.Board = BoardConfig{AreaWidth: 240, AreaHeight: 480, BlockSize: 30}
	}
}
