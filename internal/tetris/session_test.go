package tetris

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestSession(cols, rows int) *Session {
	return NewSession(Options{Cols: cols, Rows: rows, Seed: 42})
}

func TestNewSession(t *testing.T) {
	s := NewSession(Options{Cols: 16, Rows: 30, Seed: 1, HighScore: 700})

	if s.Score() != 0 || s.GameOver() {
		t.Errorf("new session: score=%d over=%v", s.Score(), s.GameOver())
	}
	if s.HighScore() != 700 {
		t.Errorf("HighScore() = %d, expected carried 700", s.HighScore())
	}
	if cur := s.Current(); cur.X != 8 || cur.Y != 0 || cur.Rotation != 0 {
		t.Errorf("current piece = %+v, expected rotation 0 at (8, 0)", cur)
	}
	if s.Grid().Cols() != 16 || s.Grid().Rows() != 30 {
		t.Errorf("grid = %dx%d, expected 16x30", s.Grid().Cols(), s.Grid().Rows())
	}
}

func TestTickMovesDown(t *testing.T) {
	s := newTestSession(10, 20)
	before := s.Current()

	s.Tick()

	after := s.Current()
	if after.Y != before.Y+1 || after.X != before.X {
		t.Errorf("after tick piece at (%d, %d), expected (%d, %d)", after.X, after.Y, before.X, before.Y+1)
	}
	if s.Pieces() != 0 {
		t.Errorf("no piece should lock on a free fall, got %d", s.Pieces())
	}
}

func TestBlockedFallLocks(t *testing.T) {
	s := newTestSession(10, 20)
	s.current = NewPiece(KindO, 0, 18) // occupies (1..2, 18..19)
	next := s.Next()

	s.Tick()

	if s.Pieces() != 1 {
		t.Fatalf("Pieces() = %d, expected 1", s.Pieces())
	}
	for _, c := range []Coord{{1, 18}, {2, 18}, {1, 19}, {2, 19}} {
		if cell := s.Grid().At(c.X, c.Y); !cell.Filled || cell.Kind != KindO {
			t.Errorf("cell %v = %+v, expected locked O", c, cell)
		}
	}
	if s.Current() != next {
		t.Errorf("current = %+v, expected promoted next %+v", s.Current(), next)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
}

func TestBlockedHorizontalMoveDoesNotLock(t *testing.T) {
	s := newTestSession(10, 20)
	s.current = NewPiece(KindI, 0, 5)
	before := s.Current()

	if s.MoveShape(-1, 0) {
		t.Error("MoveShape(-1, 0) against the wall should be rejected")
	}
	if s.Current() != before {
		t.Errorf("piece moved to %+v, expected unchanged %+v", s.Current(), before)
	}
	if s.Pieces() != 0 || s.Grid().FilledCount() != 0 {
		t.Error("a blocked horizontal move must not lock the piece")
	}

	if !s.MoveShape(1, 0) {
		t.Error("MoveShape(1, 0) into free space should succeed")
	}
	if s.Current().X != 1 {
		t.Errorf("X = %d, expected 1", s.Current().X)
	}
}

func TestGravityClearsLines(t *testing.T) {
	s := newTestSession(10, 20)
	fillRow(s.grid, 19, KindI, 1, 2)
	fillRow(s.grid, 18, KindL, 1, 2)
	s.current = NewPiece(KindO, 0, 18)

	s.Tick()

	if s.Lines() != 2 {
		t.Errorf("Lines() = %d, expected 2", s.Lines())
	}
	if s.Score() != 2*PointsPerLine {
		t.Errorf("Score() = %d, expected %d", s.Score(), 2*PointsPerLine)
	}
	if s.Grid().FilledCount() != 0 {
		t.Errorf("grid should be empty after clearing, has %d cells", s.Grid().FilledCount())
	}
}

func TestSingleRowFillScoresOnce(t *testing.T) {
	// A 5x1 field filled one cell at a time clears exactly one line.
	// Cells go straight to the grid: on a one-row field every spawn
	// collides, so a full lock would end the run after the first cell.
	s := newTestSession(5, 1)

	for x := 0; x < 4; x++ {
		s.grid.Lock([]Coord{{X: x, Y: 0}}, KindO)
		s.clearLines()
	}
	if s.Score() != 0 || s.Lines() != 0 {
		t.Fatalf("partial row scored: score=%d lines=%d", s.Score(), s.Lines())
	}

	s.grid.Lock([]Coord{{X: 4, Y: 0}}, KindO)
	s.clearLines()

	if s.Lines() != 1 {
		t.Errorf("Lines() = %d, expected 1", s.Lines())
	}
	if s.Score() != PointsPerLine {
		t.Errorf("Score() = %d, expected %d", s.Score(), PointsPerLine)
	}
	if s.Grid().FilledCount() != 0 {
		t.Error("the cleared row should leave the field empty")
	}
	if s.GameOver() {
		t.Error("clearing lines alone should not end the run")
	}
}

func TestSingleRowFieldEndsAfterFirstLock(t *testing.T) {
	s := newTestSession(5, 1)

	s.lockCells([]Coord{{X: 0, Y: 0}}, KindO)

	if !s.GameOver() {
		t.Error("no piece fits a one-row field, expected game over after the first lock")
	}
}

func TestRotateRejectedAtWall(t *testing.T) {
	s := newTestSession(10, 20)
	// Vertical I hugging the left wall; the horizontal state would poke out.
	s.current = Piece{Kind: KindI, Rotation: 1, X: -2, Y: 5}
	before := s.Current()
	beforeCells := before.Cells()

	if s.RotateShape() {
		t.Error("RotateShape() should be rejected at the wall")
	}

	after := s.Current()
	if after.Rotation != before.Rotation {
		t.Errorf("rotation = %d, expected %d", after.Rotation, before.Rotation)
	}
	for i, c := range after.Cells() {
		if c != beforeCells[i] {
			t.Errorf("cell %d = %v, expected %v", i, c, beforeCells[i])
		}
	}
}

func TestRotateRejectedByLockedCells(t *testing.T) {
	s := newTestSession(10, 20)
	s.current = NewPiece(KindT, 3, 8) // cells (4,8) (3,9) (4,9) (5,9)
	s.grid.Lock([]Coord{{4, 10}}, KindO)

	// Rotation 1 would need (4,10), which is filled.
	if s.RotateShape() {
		t.Error("RotateShape() into a locked cell should be rejected")
	}
	if s.Current().Rotation != 0 {
		t.Errorf("rotation = %d, expected 0", s.Current().Rotation)
	}
}

func TestRotateCycles(t *testing.T) {
	s := newTestSession(10, 20)
	s.current = NewPiece(KindL, 4, 5)

	for i := 1; i <= 4; i++ {
		if !s.RotateShape() {
			t.Fatalf("rotation %d should succeed in open space", i)
		}
	}
	if s.Current().Rotation != 0 {
		t.Errorf("four rotations of L should wrap to 0, got %d", s.Current().Rotation)
	}
}

// blockSpawnArea fills columns 0..8 of the top rows so every spawned piece collides
// while no row is full.
func blockSpawnArea(s *Session) {
	for y := 0; y < 4; y++ {
		fillRow(s.grid, y, KindT, 9)
	}
}

func TestSpawnCollisionEndsSession(t *testing.T) {
	s := newTestSession(10, 20)
	blockSpawnArea(s)
	s.score = 300
	s.highScore = 100
	s.current = NewPiece(KindO, 0, 18)

	s.Tick()

	if !s.GameOver() {
		t.Fatal("session should be over when the promoted piece collides")
	}
	if s.HighScore() != 300 {
		t.Errorf("HighScore() = %d, expected 300", s.HighScore())
	}

	// A new session starts from zero but keeps the high score.
	fresh := NewSession(Options{Cols: 10, Rows: 20, Seed: 9, HighScore: s.HighScore()})
	if fresh.Score() != 0 || fresh.GameOver() {
		t.Errorf("fresh session: score=%d over=%v", fresh.Score(), fresh.GameOver())
	}
	if fresh.HighScore() != 300 {
		t.Errorf("fresh HighScore() = %d, expected 300", fresh.HighScore())
	}
}

func TestGameOverKeepsHigherHighScore(t *testing.T) {
	s := newTestSession(10, 20)
	blockSpawnArea(s)
	s.score = 200
	s.highScore = 900
	s.current = NewPiece(KindO, 0, 18)

	s.Tick()

	if !s.GameOver() {
		t.Fatal("session should be over")
	}
	if s.HighScore() != 900 {
		t.Errorf("HighScore() = %d, expected 900 to be kept", s.HighScore())
	}
}

func TestCommandsIgnoredAfterGameOver(t *testing.T) {
	s := newTestSession(10, 20)
	blockSpawnArea(s)
	s.current = NewPiece(KindO, 0, 18)
	s.Tick()
	if !s.GameOver() {
		t.Fatal("setup should end the session")
	}

	before := s.Snapshot()
	grid := s.Grid().Clone()

	s.Tick()
	s.Apply(core.ActionLeft)
	s.Apply(core.ActionRight)
	s.Apply(core.ActionRotate)

	after := s.Snapshot()
	after.Ticks = before.Ticks
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("state changed after game over (-before +after):\n%s", diff)
	}
	if !s.Grid().Equal(grid) {
		t.Error("grid changed after game over")
	}
}

func TestApplyActions(t *testing.T) {
	s := newTestSession(10, 20)
	s.current = NewPiece(KindT, 4, 5)

	s.Apply(core.ActionLeft)
	if s.Current().X != 3 {
		t.Errorf("after Left X = %d, expected 3", s.Current().X)
	}
	s.Apply(core.ActionRight)
	s.Apply(core.ActionRight)
	if s.Current().X != 5 {
		t.Errorf("after Right x2 X = %d, expected 5", s.Current().X)
	}
	s.Apply(core.ActionRotate)
	if s.Current().Rotation != 1 {
		t.Errorf("after Rotate rotation = %d, expected 1", s.Current().Rotation)
	}
	s.Apply(core.ActionConfirm)
	if s.Current().X != 5 || s.Current().Rotation != 1 {
		t.Error("non-piece actions should be ignored")
	}
}

func TestGravityEventuallyEndsSession(t *testing.T) {
	s := newTestSession(10, 20)

	for i := 0; i < 100000 && !s.GameOver(); i++ {
		s.Tick()
	}

	if !s.GameOver() {
		t.Fatal("stacking pieces without input should end the session")
	}
	if s.HighScore() != s.Score() {
		t.Errorf("HighScore() = %d, expected final score %d", s.HighScore(), s.Score())
	}
}

func TestDeterminism(t *testing.T) {
	s1 := NewSession(Options{Cols: 10, Rows: 20, Seed: 12345})
	s2 := NewSession(Options{Cols: 10, Rows: 20, Seed: 12345})

	actions := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionRight, core.ActionNone}
	for i := 0; i < 400; i++ {
		a := actions[i%len(actions)]
		s1.Apply(a)
		s2.Apply(a)
		s1.Tick()
		s2.Tick()
	}

	if diff := cmp.Diff(s1.Snapshot(), s2.Snapshot()); diff != "" {
		t.Errorf("snapshots differ (-first +second):\n%s", diff)
	}
	if !s1.Grid().Equal(s2.Grid()) {
		t.Error("grids differ for identical seeds and inputs")
	}
}

func TestRenderInfoPanel(t *testing.T) {
	s := NewSession(Options{Cols: 10, Rows: 20, Seed: 3, HighScore: 500})
	dst := core.NewScreen(80, 30)

	s.Render(dst)
	out := dst.String()

	for _, want := range []string{"Score: 0", "High Score: 500", "Next:", "·"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("GAME OVER should not be shown while playing")
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestSession(10, 20)
	blockSpawnArea(s)
	s.current = NewPiece(KindO, 0, 18)
	s.Tick()

	dst := core.NewScreen(80, 30)
	s.Render(dst)
	out := dst.String()

	for _, want := range []string{"GAME OVER", "Press R to Retry", "Press Backspace for Home"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over render missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(16, 30)
	dst := core.NewScreen(40, 10)

	s.Render(dst)

	if !strings.Contains(dst.String(), "Window too small") {
		t.Error("expected too-small notice on a tiny screen")
	}
}
