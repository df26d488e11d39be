package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Piece colors use the classic palette; lipgloss degrades them to the
// terminal's color profile.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	core.ColorPieceBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0341AE")),
	core.ColorPieceGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("#72CB3B")),
	core.ColorPieceYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD500")),
	core.ColorPieceOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF971C")),
	core.ColorPieceRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3213")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
