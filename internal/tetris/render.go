package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants in screen characters.
const (
	cellWidth  = 2  // each block is drawn two characters wide
	infoGap    = 3  // space between the board frame and the info column
	infoWidth  = 26 // widest info line is "Press Backspace for Home"
	infoHeight = 18 // rows used by the info column
)

const (
	blockRune = '█'
	dotRune   = '·'
)

// RequiredSize returns the smallest screen that fits a cols x rows board
// together with the info column.
func RequiredSize(cols, rows int) (w, h int) {
	w = cols*cellWidth + 2 + infoGap + infoWidth
	h = max(rows+2, infoHeight)
	return w, h
}

// Render draws the session into dst: the framed playfield with locked cells,
// the active piece and grid dots, then the info column with score, high
// score, the next piece and the game over prompt.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	cols, rows := s.grid.Cols(), s.grid.Rows()
	needW, needH := RequiredSize(cols, rows)
	if dst.Width() < needW || dst.Height() < needH {
		renderTooSmall(dst, needW, needH)
		return
	}

	originX := (dst.Width() - needW) / 2
	originY := (dst.Height() - (rows + 2)) / 2
	frame := core.NewRect(originX, originY, cols*cellWidth+2, rows+2)
	dst.DrawBox(frame, core.ColorDarkGray)

	boardX, boardY := frame.X+1, frame.Y+1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := s.grid.At(x, y)
			if cell.Filled {
				drawBlock(dst, boardX+x*cellWidth, boardY+y, cell.Kind.Color())
			} else {
				dst.SetCell(boardX+x*cellWidth, boardY+y, dotRune, core.ColorGray)
			}
		}
	}

	for _, c := range s.current.Cells() {
		if c.Y < 0 {
			continue
		}
		drawBlock(dst, boardX+c.X*cellWidth, boardY+c.Y, s.current.Kind.Color())
	}

	s.renderInfo(dst, frame.Right()+infoGap, frame.Y)
}

// renderInfo draws the info column with its top-left corner at (x, y).
func (s *Session) renderInfo(dst *core.Screen, x, y int) {
	dst.DrawText(x, y+1, fmt.Sprintf("Score: %d", s.score), core.ColorWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("High Score: %d", s.highScore), core.ColorWhite)
	dst.DrawText(x, y+3, fmt.Sprintf("Lines: %d", s.lines), core.ColorGray)

	dst.DrawText(x, y+5, "Next:", core.ColorWhite)
	for _, o := range s.next.Shape() {
		drawBlock(dst, x+o.X*cellWidth, y+6+o.Y, s.next.Kind.Color())
	}

	if s.gameOver {
		dst.DrawText(x, y+12, "GAME OVER", core.ColorRed)
		dst.DrawText(x, y+14, "Press R to Retry", core.ColorWhite)
		dst.DrawText(x, y+15, "Press Backspace for Home", core.ColorWhite)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetCell(x, y, blockRune, c)
	dst.SetCell(x+1, y, blockRune, c)
}

func renderTooSmall(dst *core.Screen, needW, needH int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorRed)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorGray)
}
