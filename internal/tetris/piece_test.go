package tetris

import (
	"math/rand"
	"testing"
)

func TestPieceCellsDistinct(t *testing.T) {
	positions := []Coord{{0, 0}, {5, 7}, {-2, -1}}

	for _, kind := range Kinds() {
		for r := 0; r < kind.RotationCount(); r++ {
			for _, pos := range positions {
				p := Piece{Kind: kind, Rotation: r, X: pos.X, Y: pos.Y}
				cells := p.Cells()
				if len(cells) != BlocksPerPiece {
					t.Fatalf("%s rotation %d: got %d cells", kind, r, len(cells))
				}
				seen := make(map[Coord]bool)
				for _, c := range cells {
					if seen[c] {
						t.Errorf("%s rotation %d at %v: duplicate cell %v", kind, r, pos, c)
					}
					seen[c] = true
				}
			}
		}
	}
}

func TestPieceCellsAreOffsetByPosition(t *testing.T) {
	p := NewPiece(KindT, 4, 2)
	expected := []Coord{{5, 2}, {4, 3}, {5, 3}, {6, 3}}

	cells := p.Cells()
	for i, c := range cells {
		if c != expected[i] {
			t.Errorf("cell %d = %v, expected %v", i, c, expected[i])
		}
	}
}

func TestPieceRotateWraps(t *testing.T) {
	for _, kind := range Kinds() {
		p := NewPiece(kind, 0, 0)
		for i := 0; i < kind.RotationCount(); i++ {
			if p.Rotation != i {
				t.Errorf("%s: rotation after %d turns = %d", kind, i, p.Rotation)
			}
			p.Rotate()
		}
		if p.Rotation != 0 {
			t.Errorf("%s: rotation should wrap to 0, got %d", kind, p.Rotation)
		}
	}
}

func TestSpawnPiece(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := make(map[Kind]int)

	for i := 0; i < 500; i++ {
		p := SpawnPiece(rng, 16)
		if !p.Kind.Valid() {
			t.Fatalf("SpawnPiece produced invalid kind %d", p.Kind)
		}
		if p.Rotation != 0 {
			t.Errorf("spawned rotation = %d, expected 0", p.Rotation)
		}
		if p.X != 8 || p.Y != 0 {
			t.Errorf("spawned at (%d, %d), expected (8, 0)", p.X, p.Y)
		}
		counts[p.Kind]++
	}

	for _, kind := range Kinds() {
		if counts[kind] == 0 {
			t.Errorf("kind %s never spawned in 500 draws", kind)
		}
	}
}

func TestShapeInvalidRotationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Shape() with out-of-range rotation should panic")
		}
	}()
	p := Piece{Kind: KindO, Rotation: 1}
	p.Shape()
}
