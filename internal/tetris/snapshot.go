package tetris

// Snapshot captures the observable session state for determinism tests and debugging.
type Snapshot struct {
	Ticks     uint64
	Score     int
	HighScore int
	Lines     int
	Pieces    int
	Current   Piece
	Next      Piece
	Filled    int
	GameOver  bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     s.ticks,
		Score:     s.score,
		HighScore: s.highScore,
		Lines:     s.lines,
		Pieces:    s.pieces,
		Current:   s.current,
		Next:      s.next,
		Filled:    s.grid.FilledCount(),
		GameOver:  s.gameOver,
	}
}
