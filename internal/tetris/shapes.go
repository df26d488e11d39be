// Package tetris implements the falling-block puzzle: the shape catalog,
// pieces, the playfield grid and the game session state machine.
// It is UI-agnostic and deterministic for a given seed.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the piece shapes in the catalog.
type Kind int

const (
	KindI Kind = iota
	KindL
	KindS
	KindT
	KindO
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 5

// BlocksPerPiece is the number of cells every rotation state occupies.
const BlocksPerPiece = 4

// Offset is a cell position relative to a piece's origin.
type Offset struct {
	X, Y int
}

// Rotation is one orientation of a piece kind.
type Rotation [BlocksPerPiece]Offset

// catalog holds the rotation states of every kind, indexed by Kind.
var catalog = [KindCount][]Rotation{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	KindL: {
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{1, 0}, {2, 0}, {2, 1}, {2, 2}},
		{{2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
}

var kindColors = [KindCount]core.Color{
	KindI: core.ColorPieceBlue,
	KindL: core.ColorPieceGreen,
	KindS: core.ColorPieceYellow,
	KindT: core.ColorPieceOrange,
	KindO: core.ColorPieceRed,
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

func (k Kind) mustValid() {
	if !k.Valid() {
		panic(fmt.Sprintf("tetris: invalid piece kind %d", int(k)))
	}
}

// RotationStates returns the ordered rotation states of the kind.
// The returned slice is shared and must not be modified.
func RotationStates(k Kind) []Rotation {
	k.mustValid()
	return catalog[k]
}

// RotationCount returns how many distinct orientations the kind has.
func (k Kind) RotationCount() int {
	return len(RotationStates(k))
}

// Color returns the fixed color of the kind.
func (k Kind) Color() core.Color {
	k.mustValid()
	return kindColors[k]
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindL:
		return "L"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindO:
		return "O"
	default:
		return "?"
	}
}

// Kinds returns every catalog kind in index order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
