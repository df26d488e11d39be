package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// HomeAction is the outcome of activating a home screen button.
type HomeAction int

const (
	HomeActionNone HomeAction = iota
	HomeActionStartGame
	HomeActionShowHighScore
	HomeActionQuit
)

// String returns a human-readable name for the action.
func (a HomeAction) String() string {
	switch a {
	case HomeActionNone:
		return "None"
	case HomeActionStartGame:
		return "StartGame"
	case HomeActionShowHighScore:
		return "ShowHighScore"
	case HomeActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Home screen layout.
const (
	buttonWidth  = 20
	buttonHeight = 3
	buttonGap    = 1
	titleGap     = 3 // rows between the title and the first button
)

// homeTitle is drawn letter by letter in the piece colors.
const homeTitle = "T E T R I S"

var titleColors = []core.Color{
	core.ColorPieceBlue,
	core.ColorPieceGreen,
	core.ColorPieceYellow,
	core.ColorPieceOrange,
	core.ColorPieceRed,
}

// Button is a labeled, clickable rectangle on the home screen.
type Button struct {
	Label  string
	Action HomeAction
	Rect   core.Rect
}

// HomeMenu is the home screen: a title and three stacked buttons.
// The focused button can be moved with the keyboard or by hovering the pointer.
type HomeMenu struct {
	buttons []Button
	cursor  int
	titleY  int
}

// NewHomeMenu creates the home menu laid out for the given screen size.
func NewHomeMenu(width, height int) *HomeMenu {
	m := &HomeMenu{
		buttons: []Button{
			{Label: "Play", Action: HomeActionStartGame},
			{Label: "High Score", Action: HomeActionShowHighScore},
			{Label: "Quit", Action: HomeActionQuit},
		},
	}
	m.Layout(width, height)
	return m
}

// Layout positions the buttons for a screen of the given size.
func (m *HomeMenu) Layout(width, height int) {
	total := len(m.buttons)*buttonHeight + (len(m.buttons)-1)*buttonGap
	top := max((height-total)/2, titleGap)
	m.titleY = top - titleGap

	for i := range m.buttons {
		y := top + i*(buttonHeight+buttonGap)
		m.buttons[i].Rect = core.CenteredRect(width, y, buttonWidth, buttonHeight)
	}
}

// Buttons returns the current buttons with their screen rectangles.
func (m *HomeMenu) Buttons() []Button {
	out := make([]Button, len(m.buttons))
	copy(out, m.buttons)
	return out
}

// Cursor returns the index of the focused button.
func (m *HomeMenu) Cursor() int {
	return m.cursor
}

// Move shifts focus by delta, clamped to the button list.
func (m *HomeMenu) Move(delta int) {
	m.cursor = core.Clamp(m.cursor+delta, 0, len(m.buttons)-1)
}

// Selected returns the action of the focused button.
func (m *HomeMenu) Selected() HomeAction {
	return m.buttons[m.cursor].Action
}

// ButtonAt returns the index of the button under (x, y), or -1.
func (m *HomeMenu) ButtonAt(x, y int) int {
	for i, b := range m.buttons {
		if b.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Hover focuses the button under the pointer, if any.
func (m *HomeMenu) Hover(x, y int) {
	if i := m.ButtonAt(x, y); i >= 0 {
		m.cursor = i
	}
}

// Click returns the action of the button under the pointer,
// or HomeActionNone if the click missed every button.
func (m *HomeMenu) Click(x, y int) HomeAction {
	i := m.ButtonAt(x, y)
	if i < 0 {
		return HomeActionNone
	}
	m.cursor = i
	return m.buttons[i].Action
}

// Render draws the home screen into the buffer.
func (m *HomeMenu) Render(dst *core.Screen) {
	dst.Clear()

	x := (dst.Width() - len(homeTitle)) / 2
	letter := 0
	for i, r := range homeTitle {
		if r == ' ' {
			continue
		}
		dst.SetCell(x+i, m.titleY, r, titleColors[letter%len(titleColors)])
		letter++
	}

	for i, b := range m.buttons {
		border, label := core.ColorDarkGray, core.ColorGray
		if i == m.cursor {
			border, label = core.ColorWhite, core.ColorWhite
		}
		dst.DrawBox(b.Rect, border)

		cx, cy := b.Rect.Center()
		dst.DrawText(cx-len(b.Label)/2, cy, b.Label, label)
	}
}
