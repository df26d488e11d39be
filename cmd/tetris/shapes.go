package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece catalog",
	Long:  `Shows every piece kind with all of its rotation states on a 4x4 grid.`,
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(_ *cobra.Command, _ []string) {
	for _, k := range tetris.Kinds() {
		states := tetris.RotationStates(k)
		fmt.Printf("%s  (%s, %d rotation states)\n", k, k.Color(), len(states))

		grids := make([][]string, len(states))
		for i, rot := range states {
			grids[i] = drawRotation(rot)
		}
		for row := 0; row < tetris.BlocksPerPiece; row++ {
			line := make([]string, len(grids))
			for i := range grids {
				line[i] = grids[i][row]
			}
			fmt.Printf("  %s\n", strings.Join(line, "   "))
		}
		fmt.Println()
	}
}

// drawRotation renders one rotation state as four rows of a 4x4 grid.
func drawRotation(rot tetris.Rotation) []string {
	var cells [tetris.BlocksPerPiece][tetris.BlocksPerPiece]bool
	for _, o := range rot {
		cells[o.Y][o.X] = true
	}

	rows := make([]string, tetris.BlocksPerPiece)
	for y := range cells {
		var sb strings.Builder
		for x := range cells[y] {
			if cells[y][x] {
				sb.WriteString("[]")
			} else {
				sb.WriteString(" .")
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
