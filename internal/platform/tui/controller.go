package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Mode is the screen currently shown by the controller.
type Mode int

const (
	ModeHome Mode = iota
	ModePlaying
	ModeHighScore
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "home"
	case ModePlaying:
		return "playing"
	case ModeHighScore:
		return "high-score"
	default:
		return "unknown"
	}
}

// Options configures a Controller.
type Options struct {
	Config core.RuntimeConfig
	Store  *storage.Store // run log; nil disables recording
	Logger *log.Logger    // nil discards log output
	Player string         // recorded with each run
}

// Controller is the Bubble Tea model that owns the game session and
// switches between the home, playing and high score screens.
type Controller struct {
	cfg    core.RuntimeConfig
	store  *storage.Store
	logger *log.Logger
	player string

	keys   *KeyMapper
	help   help.Model
	screen *core.Screen
	menu   *HomeMenu
	scores *HighScoreView

	mode      Mode
	session   *tetris.Session
	tickGen   int
	games     int  // sessions started so far
	highScore int  // best finished score seen by this controller
	recorded  bool // current session's game over has been logged
	quitting  bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewController creates a controller showing the home screen.
func NewController(opts Options) Controller {
	cfg := opts.Config
	if cfg.PlayTickRate <= 0 {
		cfg.PlayTickRate = core.DefaultConfig().PlayTickRate
	}
	if cfg.MenuTickRate <= 0 {
		cfg.MenuTickRate = core.DefaultConfig().MenuTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := opts.Player
	if player == "" {
		player = "local"
	}

	bodyH := max(cfg.ScreenH-1, 1) // last row holds the help line
	h := help.New()
	h.Width = cfg.ScreenW

	return Controller{
		cfg:    cfg,
		store:  opts.Store,
		logger: logger,
		player: player,
		keys:   NewKeyMapper(),
		help:   h,
		screen: core.NewScreen(cfg.ScreenW, bodyH),
		menu:   NewHomeMenu(cfg.ScreenW, bodyH),
		scores: NewHighScoreView(cfg.ScreenW, bodyH),
		mode:   ModeHome,
	}
}

// Init starts the menu redraw loop.
func (c Controller) Init() tea.Cmd {
	return tickCmd(c.cfg.MenuTickRate, c.tickGen)
}

// Update handles messages and updates the controller state.
func (c Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKey(msg)

	case tea.MouseMsg:
		return c.handleMouse(msg)

	case tea.WindowSizeMsg:
		return c.handleResize(msg)

	case TickMsg:
		return c.handleTick(msg)
	}

	return c, nil
}

// handleKey dispatches a key press according to the current mode.
func (c Controller) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch c.mode {
	case ModeHome:
		action, hotkey := c.keys.MapMenuKey(msg)
		if hotkey != HomeActionNone {
			return c.activate(hotkey)
		}
		switch action {
		case core.ActionUp:
			c.menu.Move(-1)
		case core.ActionDown:
			c.menu.Move(1)
		case core.ActionConfirm:
			return c.activate(c.menu.Selected())
		}

	case ModePlaying:
		action := c.keys.MapPlayKey(msg)
		switch action {
		case core.ActionQuit:
			return c.quit()
		case core.ActionBack:
			return c.goHome()
		case core.ActionRetry:
			if c.session.GameOver() {
				c.logger.Debug("retry", "previous_score", c.session.Score())
				return c.startGame()
			}
		case core.ActionLeft, core.ActionRight, core.ActionRotate:
			c.session.Apply(action)
		}

	case ModeHighScore:
		switch c.keys.MapHighScoreKey(msg) {
		case core.ActionQuit:
			return c.quit()
		case core.ActionBack:
			return c.goHome()
		case core.ActionUp, core.ActionDown:
			return c, c.scores.Update(msg)
		}
	}

	return c, nil
}

// handleMouse routes pointer events to the home menu.
func (c Controller) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if c.mode != ModeHome {
		return c, nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		c.menu.Hover(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if action := c.menu.Click(msg.X, msg.Y); action != HomeActionNone {
			return c.activate(action)
		}
	}

	return c, nil
}

// handleResize processes window resize events. The session keeps its board;
// the renderer shows a notice when the board no longer fits.
func (c Controller) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	c.cfg.ScreenW = msg.Width
	c.cfg.ScreenH = msg.Height

	bodyH := max(msg.Height-1, 1)
	c.screen.Resize(msg.Width, bodyH)
	c.menu.Layout(msg.Width, bodyH)
	c.scores.SetSize(msg.Width, bodyH)
	c.help.Width = msg.Width

	return c, nil
}

// handleTick advances gravity while playing and keeps the loop alive.
// Ticks from a retired loop are dropped without rescheduling.
func (c Controller) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != c.tickGen {
		return c, nil
	}

	if c.mode == ModePlaying {
		c.session.Tick()
		c.recordGameOver()
	}

	return c, tickCmd(c.tickRate(), c.tickGen)
}

// activate carries out a home screen action.
func (c Controller) activate(action HomeAction) (tea.Model, tea.Cmd) {
	switch action {
	case HomeActionStartGame:
		return c.startGame()
	case HomeActionShowHighScore:
		return c.showHighScore()
	case HomeActionQuit:
		return c.quit()
	}
	return c, nil
}

// startGame replaces the session with a brand-new one that carries the high score.
func (c Controller) startGame() (tea.Model, tea.Cmd) {
	seed := c.nextSeed()
	c.session = tetris.NewSession(tetris.Options{
		Cols:      c.cfg.Cols,
		Rows:      c.cfg.Rows,
		Seed:      seed,
		HighScore: c.carriedHighScore(),
	})
	c.games++
	c.recorded = false

	c.logger.Debug("session started",
		"game", c.games,
		"seed", seed,
		"board", fmt.Sprintf("%dx%d", c.cfg.Cols, c.cfg.Rows),
	)

	return c.switchMode(ModePlaying)
}

// showHighScore refreshes and opens the high score screen.
func (c Controller) showHighScore() (tea.Model, tea.Cmd) {
	c.highScore = c.carriedHighScore()
	if err := c.scores.Refresh(c.store, c.highScore); err != nil {
		c.logger.Warn("could not load runs", "error", err)
	}
	return c.switchMode(ModeHighScore)
}

// goHome returns to the home screen. An unfinished session is abandoned.
func (c Controller) goHome() (tea.Model, tea.Cmd) {
	if c.mode == ModePlaying && !c.session.GameOver() {
		c.logger.Debug("session abandoned", "score", c.session.Score())
	}
	return c.switchMode(ModeHome)
}

func (c Controller) quit() (tea.Model, tea.Cmd) {
	c.quitting = true
	return c, tea.Quit
}

// switchMode changes the screen and starts a fresh tick loop at its cadence.
func (c Controller) switchMode(mode Mode) (tea.Model, tea.Cmd) {
	c.mode = mode
	c.tickGen++
	return c, tickCmd(c.tickRate(), c.tickGen)
}

func (c *Controller) tickRate() int {
	if c.mode == ModePlaying {
		return c.cfg.PlayTickRate
	}
	return c.cfg.MenuTickRate
}

// nextSeed derives reproducible seeds from a configured seed,
// or falls back to the clock.
func (c *Controller) nextSeed() int64 {
	if c.cfg.Seed != 0 {
		return c.cfg.Seed + int64(c.games)
	}
	return time.Now().UnixNano()
}

// carriedHighScore is the best of this controller's high score and the run log.
func (c *Controller) carriedHighScore() int {
	high := c.highScore
	if c.store == nil {
		return high
	}

	logged, err := c.store.HighScore()
	if err != nil {
		c.logger.Warn("could not read high score", "error", err)
		return high
	}
	return max(high, logged)
}

// recordGameOver logs a finished session once and adds it to the run log.
func (c *Controller) recordGameOver() {
	if c.recorded || !c.session.GameOver() {
		return
	}
	c.recorded = true

	state := c.session.State()
	c.highScore = max(c.highScore, state.HighScore)

	fields := []any{
		"score", state.Score,
		"lines", state.Lines,
		"pieces", c.session.Pieces(),
		"high_score", c.highScore,
	}

	if c.store != nil {
		runID, err := c.store.SaveRun(storage.Run{
			Player: c.player,
			Score:  state.Score,
			Lines:  state.Lines,
			Pieces: c.session.Pieces(),
		})
		if err != nil {
			c.logger.Error("could not record run", "error", err)
		} else {
			fields = append(fields, "run", runID)
		}
	}

	c.logger.Info("game over", fields...)
}

// Mode returns the current screen.
func (c Controller) Mode() Mode {
	return c.mode
}

// Session returns the current game session, or nil before the first game.
func (c Controller) Session() *tetris.Session {
	return c.session
}

// HighScore returns the best finished score seen by the controller.
func (c Controller) HighScore() int {
	return c.highScore
}

// Menu returns the home menu.
func (c Controller) Menu() *HomeMenu {
	return c.menu
}

// IsQuitting returns true if the user requested to quit.
func (c Controller) IsQuitting() bool {
	return c.quitting
}

// View renders the current screen followed by a help line.
func (c Controller) View() string {
	if c.quitting {
		return ""
	}

	var body, hints string
	switch c.mode {
	case ModeHome:
		c.menu.Render(c.screen)
		body = RenderScreen(c.screen)
		hints = c.help.View(c.keys.Menu)
	case ModePlaying:
		c.session.Render(c.screen)
		body = RenderScreen(c.screen)
		hints = c.help.View(c.keys.Play)
	case ModeHighScore:
		body = c.scores.View()
		hints = c.help.View(c.keys.HighScore)
	}

	return body + "\n" + helpStyle.Render(hints)
}

// programOptions are the Bubble Tea options every controller runs with.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	}
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewController(opts), programOptions()...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
