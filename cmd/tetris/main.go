// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play    - Play on this terminal (default)
//	tetris serve   - Start SSH server for remote play
//	tetris shapes  - Print the piece catalog
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible piece sequences
//	--config <path>      - Custom config YAML
//	--board <preset>     - Board preset: classic, standard, small
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagBoard    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A single-player falling-block puzzle for the terminal.

Available commands:
  play     - Play on this terminal (default when no command is given)
  serve    - Start SSH server for remote play
  shapes   - Print every piece and its rotation states

Examples:
  tetris
  tetris play --board standard
  tetris serve --ssh :2222
  tetris shapes`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBoard, "board", "", "Board preset: classic, standard, small")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shapesCmd)
}

// loadConfig resolves the config file and board preset into a validated config.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseBoardPreset(flagBoard)
	if err != nil {
		return cfg, err
	}
	config.ApplyBoardPreset(&cfg, preset)

	return cfg, cfg.Validate()
}

// runtimeConfig builds the platform config for a screen of the given size.
func runtimeConfig(cfg config.TetrisConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		Cols:         cfg.Board.Cols(),
		Rows:         cfg.Board.Rows(),
		PlayTickRate: cfg.Timing.PlayTickRate,
		MenuTickRate: cfg.Timing.MenuTickRate,
		Seed:         flagSeed,
	}
}

// newLogger creates the logger. Logs go to --log-file when given,
// otherwise to fallback. The returned closer releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
