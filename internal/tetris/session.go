package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PointsPerLine is the flat score awarded for every cleared row,
// regardless of how many rows clear at once.
const PointsPerLine = 100

// Options configures a new Session.
type Options struct {
	Cols      int   // playfield width in cells
	Rows      int   // playfield height in cells
	Seed      int64 // RNG seed for piece selection
	HighScore int   // best score carried over from earlier sessions
}

// Session is one playthrough. It exclusively owns its grid and both pieces.
// A finished session is never reset; the caller replaces it with a new one.
//
// Session is not safe for concurrent use; the platform serializes all calls.
type Session struct {
	rng  *rand.Rand
	grid *Grid

	current Piece
	next    Piece

	score     int
	highScore int
	lines     int
	pieces    int
	ticks     uint64
	gameOver  bool
}

// NewSession creates a fresh session with an empty grid and two random pieces.
func NewSession(opts Options) *Session {
	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Session{
		rng:       rng,
		grid:      NewGrid(opts.Cols, opts.Rows),
		highScore: opts.HighScore,
	}
	s.current = SpawnPiece(rng, opts.Cols)
	s.next = SpawnPiece(rng, opts.Cols)
	return s
}

// Tick applies one gravity step: the active piece moves down one row, or
// locks if it cannot.
func (s *Session) Tick() {
	s.ticks++
	if s.gameOver {
		return
	}
	s.MoveShape(0, 1)
}

// MoveShape translates the active piece by (dx, dy). A colliding move is
// reverted; if it had a vertical component the piece locks in place.
// Returns true if the piece moved.
func (s *Session) MoveShape(dx, dy int) bool {
	if s.gameOver {
		return false
	}

	s.current.X += dx
	s.current.Y += dy
	if !s.grid.Collides(s.current.Cells()) {
		return true
	}

	s.current.X -= dx
	s.current.Y -= dy
	if dy != 0 {
		s.lockCurrent()
	}
	return false
}

// RotateShape turns the active piece to its next rotation state. If the new
// orientation collides the rotation is undone; there is no wall kick.
// Returns true if the piece rotated.
func (s *Session) RotateShape() bool {
	if s.gameOver {
		return false
	}

	saved := s.current.Rotation
	s.current.Rotate()
	if s.grid.Collides(s.current.Cells()) {
		s.current.Rotation = saved
		return false
	}
	return true
}

// Apply performs the command bound to a player action.
// Actions that are not piece commands are ignored.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		s.MoveShape(-1, 0)
	case core.ActionRight:
		s.MoveShape(1, 0)
	case core.ActionRotate:
		s.RotateShape()
	}
}

// lockCurrent runs the lock sequence for the active piece.
func (s *Session) lockCurrent() {
	s.lockCells(s.current.Cells(), s.current.Kind)
}

// lockCells stamps cells into the grid, clears full rows, scores them and
// promotes the next piece. If the promoted piece collides immediately the
// session is over.
// clearLines removes full rows and credits them to the score.
func (s *Session) clearLines() {
	cleared := s.grid.ClearFullLines()
	s.lines += cleared
	s.score += cleared * PointsPerLine
}

func (s *Session) lockCells(cells []Coord, kind Kind) {
	s.grid.Lock(cells, kind)
	s.pieces++
	s.clearLines()

	s.current = s.next
	s.next = SpawnPiece(s.rng, s.grid.Cols())

	if s.grid.Collides(s.current.Cells()) {
		s.gameOver = true
		s.highScore = max(s.highScore, s.score)
	}
}

// Grid returns the playfield. Callers must treat it as read-only.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Current returns the active piece.
func (s *Session) Current() Piece {
	return s.current
}

// Next returns the piece that becomes active after the next lock.
func (s *Session) Next() Piece {
	return s.next
}

// Score returns the session score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int {
	return s.lines
}

// Pieces returns how many pieces have locked.
func (s *Session) Pieces() int {
	return s.pieces
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// State returns the summary the platform consumes each frame.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		Lines:     s.lines,
		GameOver:  s.gameOver,
	}
}
