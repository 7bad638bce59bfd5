package gol

// nextState applies the Game of Life rule to one cell given its live neighbour count.
func nextState(cell, neighbours uint8) uint8 {
	if neighbours == 3 || (cell != 0 && neighbours == 2) {
		return 1
	}
	return 0
}

// evolveRows writes the next generation of rows [start, end) into next and returns
// the population of those rows. g is only read. The ghost border makes every
// neighbour lookup in range, so the loop carries no bounds checks of its own.
func (g *Grid) evolveRows(next *Grid, start, end int) int {
	population := 0
	last := g.cols - 1
	for r := start; r < end; r++ {
		above := g.Row(r - 1)
		center := g.Row(r)
		below := g.Row(r + 1)
		out := next.Row(r)
		for c := 1; c != last; c++ {
			neighbours := above[c-1] + above[c] + above[c+1] +
				center[c-1] + center[c+1] +
				below[c-1] + below[c] + below[c+1]
			out[c] = nextState(center[c], neighbours)
			population += int(out[c])
		}
	}
	return population
}

// evolve sweeps the whole interior on the calling goroutine.
func (g *Grid) evolve(next *Grid) int {
	return g.evolveRows(next, 1, g.rows-1)
}
