package util

import "fmt"

// Cell is used as the return type for the testing framework.
// X is the column and Y the row of an interior cell, both counted from the ghost border.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
