package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifeengine/util"
)

// MaxCells bounds a single buffer, ghost border included.
const MaxCells = 1 << 30

// Grid is one cell buffer of a run: rows x cols bytes in a single allocation,
// indexed by row stride. Row and column 0 and rows-1/cols-1 form the ghost border
// and stay 0; only [1, rows-2] x [1, cols-2] holds live state.
type Grid struct {
	rows  int
	cols  int
	cells []uint8
}

// Make grid object with every cell dead.
// rows and cols include the ghost border.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("%w: grid %dx%d has no interior", ErrInvalidParams, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrGridTooLarge, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, rows*cols),
	}, nil
}

// Rows returns the row count including the ghost border.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count including the ghost border.
func (g *Grid) Cols() int { return g.cols }

// Row returns the backing slice of row r. Writes through it mutate the grid.
func (g *Grid) Row(r int) []uint8 {
	return g.cells[r*g.cols : (r+1)*g.cols]
}

func (g *Grid) At(r, c int) uint8 {
	return g.cells[r*g.cols+c]
}

// Set marks an interior cell alive or dead. Border coordinates are ignored so the
// ghost border can never be written.
func (g *Grid) Set(r, c int, alive bool) {
	if !g.Interior(r, c) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cells[r*g.cols+c] = v
}

// Interior reports whether (r, c) lies inside the ghost border.
func (g *Grid) Interior(r, c int) bool {
	return r >= 1 && r < g.rows-1 && c >= 1 && c < g.cols-1
}

// Population counts the live interior cells.
func (g *Grid) Population() int {
	count := 0
	for r := 1; r != g.rows-1; r++ {
		row := g.Row(r)
		for c := 1; c != g.cols-1; c++ {
			count += int(row[c])
		}
	}
	return count
}

// AliveCells lists live interior cells in row-major order.
func (g *Grid) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0, 64)
	for r := 1; r != g.rows-1; r++ {
		row := g.Row(r)
		for c := 1; c != g.cols-1; c++ {
			if row[c] != 0 {
				cells = append(cells, util.Cell{X: c, Y: r})
			}
		}
	}
	return cells
}

// BorderClear reports whether every ghost border cell is still 0.
func (g *Grid) BorderClear() bool {
	top, bottom := g.Row(0), g.Row(g.rows-1)
	for c := 0; c != g.cols; c++ {
		if top[c] != 0 || bottom[c] != 0 {
			return false
		}
	}
	for r := 1; r != g.rows-1; r++ {
		row := g.Row(r)
		if row[0] != 0 || row[g.cols-1] != 0 {
			return false
		}
	}
	return true
}

// Equal compares shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone copies the grid into a fresh allocation.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}
