// Package plot renders generations through an external gnuplot process fed over a pipe.
package plot

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"

	"uk.ac.bris.cs/lifeengine/gol"
)

// Gnuplot is a gol.FrameSink. The process is started on the first frame and kept
// for the rest of the run.
type Gnuplot struct {
	path  string
	args  []string
	cmd   *exec.Cmd
	stdin io.WriteCloser
	out   *bufio.Writer
}

// NewGnuplot returns a sink that runs "gnuplot -persist" so the window outlives the run.
func NewGnuplot() *Gnuplot {
	return &Gnuplot{path: "gnuplot", args: []string{"-persist"}}
}

func (g *Gnuplot) start() error {
	cmd := exec.Command(g.path, g.args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: %v", gol.ErrRendererUnavailable, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: could not open gnuplot: %v", gol.ErrRendererUnavailable, err)
	}
	g.cmd = cmd
	g.stdin = stdin
	g.out = bufio.NewWriter(stdin)
	return nil
}

// Render writes one frame and flushes it to the gnuplot process.
func (g *Gnuplot) Render(turn int, world *gol.Grid) error {
	if g.cmd == nil {
		if err := g.start(); err != nil {
			return err
		}
	}
	if err := WriteFrame(g.out, turn, world); err != nil {
		return fmt.Errorf("%w: %v", gol.ErrRendererUnavailable, err)
	}
	if err := g.out.Flush(); err != nil {
		return fmt.Errorf("%w: %v", gol.ErrRendererUnavailable, err)
	}
	return nil
}

// Close ends the input stream and waits for gnuplot to exit.
func (g *Gnuplot) Close() error {
	if g.cmd == nil {
		return nil
	}
	_ = g.out.Flush()
	_ = g.stdin.Close()
	err := g.cmd.Wait()
	g.cmd = nil
	return err
}

// WriteFrame writes the gnuplot commands for one generation: title and axes, then an
// "x y" pair per live interior cell with the first row at the top, then the "e" marker.
func WriteFrame(w io.Writer, turn int, world *gol.Grid) error {
	rows, cols := world.Rows(), world.Cols()
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "set title \"Iter = %d\"\n", turn)
	fmt.Fprintf(out, "set size square\n")
	fmt.Fprintf(out, "set key off\n")
	fmt.Fprintf(out, "set grid\n")
	fmt.Fprintf(out, "set xrange [0:%d]\n", cols-1)
	fmt.Fprintf(out, "set yrange [0:%d]\n", rows-1)
	fmt.Fprintf(out, "plot '-' with points pointtype 7 pointsize 2\n")
	for _, cell := range world.AliveCells() {
		fmt.Fprintf(out, "%d %d\n", cell.X, rows-cell.Y-1)
	}
	fmt.Fprintf(out, "e\n")
	return out.Flush()
}
