package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start the game on this terminal at the home screen.

Controls:
  Left/Right (h/l)   - Move piece
  Down (Up, x)       - Rotate piece
  R                  - Retry (after game over)
  Backspace/Esc      - Back to home screen
  Ctrl+C             - Quit

The home screen buttons can also be clicked with the mouse.
High scores last until the program exits.

Examples:
  tetris play
  tetris play --board small
  tetris play --seed 42 --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger("tetris", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting", "board", fmt.Sprintf("%dx%d", cfg.Board.Cols(), cfg.Board.Rows()))

	runErr := tui.Run(tui.Options{
		Config: runtimeConfig(cfg, width, height),
		Store:  store,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
