package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Board dimensions are in cells; screen dimensions are in terminal characters.
type RuntimeConfig struct {
	ScreenW      int   // Screen width in characters
	ScreenH      int   // Screen height in characters
	Cols         int   // Playfield columns
	Rows         int   // Playfield rows
	PlayTickRate int   // Gravity ticks per second while playing
	MenuTickRate int   // Redraw ticks per second in menu screens
	Seed         int64 // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig matching the classic layout:
// a 500x900 pixel playing area with 30 pixel blocks, 7 gravity ticks
// per second and 15 menu frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		Cols:         16,
		Rows:         30,
		PlayTickRate: 7,
		MenuTickRate: 15,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState is the summary of a session the platform needs each frame.
type GameState struct {
	Score     int
	HighScore int
	Lines     int
	GameOver  bool
}
