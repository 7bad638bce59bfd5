package gol

// RowRange is a half-open range [Start, End) of grid rows owned by one worker.
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int { return r.End - r.Start }

// divideRows splits the interior rows [1, rows-2] of a grid with ghost border into
// threads contiguous ranges. Every range has (rows-2)/threads rows and the last one
// takes the remainder, so with more threads than rows all but the last are empty.
func divideRows(rows, threads int) []RowRange {
	if threads < 1 {
		threads = 1
	}
	interior := rows - 2
	if interior < 0 {
		interior = 0
	}
	per := interior / threads
	ranges := make([]RowRange, threads)
	for i := 0; i != threads; i++ {
		ranges[i] = RowRange{Start: 1 + i*per, End: 1 + (i+1)*per}
	}
	ranges[threads-1].End = 1 + interior
	return ranges
}
