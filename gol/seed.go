package gol

import (
	"fmt"
	"log"
	"math/rand"
)

// Pattern selects the initial world. The values match the -g flag.
type Pattern int

const (
	Random Pattern = iota
	Block
	GliderGun
)

func (p Pattern) String() string {
	switch p {
	case Random:
		return "Random"
	case Block:
		return "2x2 Block, still life"
	case GliderGun:
		return "Gosper Glider Gun"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// gosperGun holds (row, col) offsets of the 36 cells of a Gosper glider gun.
var gosperGun = [36][2]int{
	{5, 1}, {5, 2}, {6, 1}, {6, 2},
	{5, 11}, {6, 11}, {7, 11},
	{4, 12}, {8, 12},
	{3, 13}, {9, 13},
	{3, 14}, {9, 14},
	{6, 15},
	{4, 16}, {8, 16},
	{5, 17}, {6, 17}, {7, 17},
	{6, 18},
	{3, 21}, {4, 21}, {5, 21},
	{3, 22}, {4, 22}, {5, 22},
	{2, 23}, {6, 23},
	{1, 25}, {2, 25}, {6, 25}, {7, 25},
	{3, 35}, {4, 35}, {3, 36}, {4, 36},
}

// seedWorld fills the interior of an empty grid and returns the number of live cells placed.
func seedWorld(p Params, g *Grid) (int, error) {
	switch p.Pattern {
	case Random:
		rng := rand.New(rand.NewSource(p.Seed))
		for r := 1; r != g.rows-1; r++ {
			row := g.Row(r)
			for c := 1; c != g.cols-1; c++ {
				if rng.Float64() < p.Probability {
					row[c] = 1
				}
			}
		}
	case Block:
		r, c := g.rows/2, g.cols/2
		g.Set(r, c, true)
		g.Set(r+1, c, true)
		g.Set(r, c+1, true)
		g.Set(r+1, c+1, true)
	case GliderGun:
		// Centred so that the gun starts 20 cells before the middle on both axes.
		for _, offset := range gosperGun {
			g.Set(offset[0]+g.rows/2-20, offset[1]+g.cols/2-20, true)
		}
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownPattern, int(p.Pattern))
	}
	population := g.Population()
	if p.Pattern != Random {
		log.Printf("%v seeded, %d cells", p.Pattern, population)
	}
	return population, nil
}
