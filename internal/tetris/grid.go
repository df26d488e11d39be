package tetris

import "fmt"

// Cell is one playfield position: empty, or filled by a locked piece of Kind.
// The zero value is an empty cell.
type Cell struct {
	Filled bool
	Kind   Kind
}

// Grid is the playfield: rows x cols cells, row 0 at the top.
// Its dimensions never change after construction.
type Grid struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", cols, rows))
	}
	g := &Grid{cols: cols, rows: rows, cells: make([][]Cell, rows)}
	for y := range g.cells {
		g.cells[y] = make([]Cell, cols)
	}
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether c is a cell of the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// At returns the cell at (x, y), or an empty cell when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(Coord{X: x, Y: y}) {
		return Cell{}
	}
	return g.cells[y][x]
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Cell {
	row := make([]Cell, g.cols)
	copy(row, g.cells[y])
	return row
}

// Collides reports whether any of the cells is left of column 0, right of the
// last column, below the last row, or on a filled cell.
//
// Cells above row 0 do not collide: a freshly spawned piece may hang partly
// above the visible field.
func (g *Grid) Collides(cells []Coord) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= g.cols || c.Y >= g.rows {
			return true
		}
		if c.Y >= 0 && g.cells[c.Y][c.X].Filled {
			return true
		}
	}
	return false
}

// Lock permanently fills the cells with kind. Every cell must be inside the
// grid; callers validate with Collides first, so anything else is a logic error.
func (g *Grid) Lock(cells []Coord, kind Kind) {
	for _, c := range cells {
		if !g.InBounds(c) {
			panic(fmt.Sprintf("tetris: lock outside %dx%d grid at %v", g.cols, g.rows, c))
		}
	}
	for _, c := range cells {
		g.cells[c.Y][c.X] = Cell{Filled: true, Kind: kind}
	}
}

// rowFull reports whether no cell of the row is empty.
func rowFull(row []Cell) bool {
	for _, cell := range row {
		if !cell.Filled {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row in one pass, compacts the remaining
// rows downward in their original order and inserts as many empty rows at the
// top. Returns the number of rows removed.
func (g *Grid) ClearFullLines() int {
	kept := make([][]Cell, 0, g.rows)
	for _, row := range g.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := g.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Cell, cleared, g.rows)
	for i := range fresh {
		fresh[i] = make([]Cell, g.cols)
	}
	g.cells = append(fresh, kept...)
	return cleared
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.Filled {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{cols: g.cols, rows: g.rows, cells: make([][]Cell, g.rows)}
	for y, row := range g.cells {
		clone.cells[y] = make([]Cell, g.cols)
		copy(clone.cells[y], row)
	}
	return clone
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.cols != other.cols || g.rows != other.rows {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}
