package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PlayKeyMap defines the key bindings while a game is on screen.
type PlayKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Rotate key.Binding
	Retry  key.Binding
	Home   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Retry, k.Home, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.Retry, k.Home, k.Quit},
	}
}

// MenuKeyMap defines the key bindings for the home screen.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Play   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Play, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Play, k.Scores, k.Quit},
	}
}

// HighScoreKeyMap defines the key bindings for the high score screen.
type HighScoreKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HighScoreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Home, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HighScoreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Home, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to semantic actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Play      PlayKeyMap
	Menu      MenuKeyMap
	HighScore HighScoreKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
// Down rotates, as in the classic layout; Up, x and w rotate too.
func NewKeyMapper() *KeyMapper {
	home := key.NewBinding(
		key.WithKeys("backspace", "esc", "b"),
		key.WithHelp("backspace", "home"),
	)

	return &KeyMapper{
		Play: PlayKeyMap{
			Left: key.NewBinding(
				key.WithKeys("left", "h", "a"),
				key.WithHelp("←/h", "left"),
			),
			Right: key.NewBinding(
				key.WithKeys("right", "l", "d"),
				key.WithHelp("→/l", "right"),
			),
			Rotate: key.NewBinding(
				key.WithKeys("down", "up", "x", "w"),
				key.WithHelp("↓/↑", "rotate"),
			),
			Retry: key.NewBinding(
				key.WithKeys("r", "R"),
				key.WithHelp("r", "retry"),
			),
			Home: home,
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
		Menu: MenuKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k", "w"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j", "s"),
				key.WithHelp("↓/j", "down"),
			),
			Select: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", "select"),
			),
			Play: key.NewBinding(
				key.WithKeys("p"),
				key.WithHelp("p", "play"),
			),
			Scores: key.NewBinding(
				key.WithKeys("h"),
				key.WithHelp("h", "high score"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
		HighScore: HighScoreKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "scroll up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "scroll down"),
			),
			Home: home,
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// MapPlayKey translates a key pressed during play.
func (km *KeyMapper) MapPlayKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Play.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Play.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Play.Right):
		return core.ActionRight
	case key.Matches(msg, km.Play.Rotate):
		return core.ActionRotate
	case key.Matches(msg, km.Play.Retry):
		return core.ActionRetry
	case key.Matches(msg, km.Play.Home):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapMenuKey translates a key pressed on the home screen. Hotkeys resolve
// straight to a HomeAction; navigation keys resolve to an Action.
func (km *KeyMapper) MapMenuKey(msg tea.KeyMsg) (core.Action, HomeAction) {
	switch {
	case key.Matches(msg, km.Menu.Quit):
		return core.ActionQuit, HomeActionQuit
	case key.Matches(msg, km.Menu.Play):
		return core.ActionNone, HomeActionStartGame
	case key.Matches(msg, km.Menu.Scores):
		return core.ActionNone, HomeActionShowHighScore
	case key.Matches(msg, km.Menu.Up):
		return core.ActionUp, HomeActionNone
	case key.Matches(msg, km.Menu.Down):
		return core.ActionDown, HomeActionNone
	case key.Matches(msg, km.Menu.Select):
		return core.ActionConfirm, HomeActionNone
	}
	return core.ActionNone, HomeActionNone
}

// MapHighScoreKey translates a key pressed on the high score screen.
func (km *KeyMapper) MapHighScoreKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.HighScore.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.HighScore.Home):
		return core.ActionBack
	case key.Matches(msg, km.HighScore.Up):
		return core.ActionUp
	case key.Matches(msg, km.HighScore.Down):
		return core.ActionDown
	}
	return core.ActionNone
}
