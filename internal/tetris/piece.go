package tetris

import (
	"fmt"
	"math/rand"
)

// Coord is an absolute cell position on the playfield.
// X grows to the right, Y grows downward; row 0 is the top.
type Coord struct {
	X, Y int
}

// Piece is an instance of a catalog kind with a rotation and a position.
// It is a plain value owned by the session.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// NewPiece creates a piece of the given kind in rotation 0 at (x, y).
func NewPiece(kind Kind, x, y int) Piece {
	kind.mustValid()
	return Piece{Kind: kind, X: x, Y: y}
}

// SpawnPiece picks a kind uniformly at random (repeats allowed) and places it
// at the spawn position: the middle column of a cols-wide field, row 0.
func SpawnPiece(rng *rand.Rand, cols int) Piece {
	kind := Kind(rng.Intn(KindCount))
	return NewPiece(kind, SpawnX(cols), 0)
}

// SpawnX returns the spawn column for a field of the given width.
func SpawnX(cols int) int {
	return cols / 2
}

// Shape returns the rotation state the piece currently uses.
// An out-of-range rotation index is an invariant violation.
func (p Piece) Shape() Rotation {
	states := RotationStates(p.Kind)
	if p.Rotation < 0 || p.Rotation >= len(states) {
		panic(fmt.Sprintf("tetris: rotation %d out of range for kind %s (%d states)",
			p.Rotation, p.Kind, len(states)))
	}
	return states[p.Rotation]
}

// Cells returns the absolute coordinates the piece occupies.
func (p Piece) Cells() []Coord {
	shape := p.Shape()
	cells := make([]Coord, 0, len(shape))
	for _, o := range shape {
		cells = append(cells, Coord{X: p.X + o.X, Y: p.Y + o.Y})
	}
	return cells
}

// Rotate advances to the next rotation state, wrapping around.
// The caller is responsible for collision checks.
func (p *Piece) Rotate() {
	p.Rotation = (p.Rotation + 1) % p.Kind.RotationCount()
}
