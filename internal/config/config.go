// Package config provides YAML-based configuration loading and board
// presets for the game.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the playing area. Sizes are in reference pixels;
// the grid has AreaWidth/BlockSize columns and AreaHeight/BlockSize rows.
type BoardConfig struct {
	AreaWidth  int `yaml:"area_width"`
	AreaHeight int `yaml:"area_height"`
	BlockSize  int `yaml:"block_size"`
}

// TimingConfig defines the loop cadences.
type TimingConfig struct {
	PlayTickRate int `yaml:"play_tick_rate"` // gravity ticks per second
	MenuTickRate int `yaml:"menu_tick_rate"` // menu redraws per second
}

// Minimum playfield size. Pieces spawn at cols/2 and reach three cells to
// the right, and four rows down.
const (
	MinCols = 8
	MinRows = 4
)

// Cols returns the number of grid columns.
func (b BoardConfig) Cols() int {
	if b.BlockSize <= 0 {
		return 0
	}
	return b.AreaWidth / b.BlockSize
}

// Rows returns the number of grid rows.
func (b BoardConfig) Rows() int {
	if b.BlockSize <= 0 {
		return 0
	}
	return b.AreaHeight / b.BlockSize
}

// Validate reports every invalid field at once.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("board.block_size must be positive, got %d", c.Board.BlockSize))
	} else {
		if cols := c.Board.Cols(); cols < MinCols {
			errs = append(errs, fmt.Errorf("board is %d columns wide, need at least %d", cols, MinCols))
		}
		if rows := c.Board.Rows(); rows < MinRows {
			errs = append(errs, fmt.Errorf("board is %d rows tall, need at least %d", rows, MinRows))
		}
	}
	if c.Timing.PlayTickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.play_tick_rate must be positive, got %d", c.Timing.PlayTickRate))
	}
	if c.Timing.MenuTickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.menu_tick_rate must be positive, got %d", c.Timing.MenuTickRate))
	}
	return errors.Join(errs...)
}
