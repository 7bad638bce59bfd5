package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"uk.ac.bris.cs/lifeengine/gol"
	"uk.ac.bris.cs/lifeengine/plot"
	"uk.ac.bris.cs/lifeengine/sdl"
	"uk.ac.bris.cs/lifeengine/term"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	// SDL must stay on the main thread.
	runtime.LockOSThread()
	var params gol.Params

	size := flag.Int("n", 100, "Number of interior cells along each side of the square world.")
	flag.IntVar(&params.Turns, "i", 200, "Maximum number of generations.")
	flag.IntVar(&params.Threads, "t", 1, "Number of workers in forkjoin mode.")
	flag.Float64Var(&params.Probability, "p", 0.5, "Probability of a live cell in the random pattern.")
	flag.Int64Var(&params.Seed, "s", 0, "Random number generator seed.")
	flag.BoolVar(&params.Step, "step", false, "Pause after every generation until enter is pressed.")
	noDisplay := flag.Bool("d", false, "Disable the display.")
	game := flag.Int("g", 0, "Initial pattern: 0 random, 1 block still life, 2 Gosper glider gun.")
	mode := flag.String("mode", "forkjoin", "Scheduling strategy: forkjoin or pipeline.")
	renderer := flag.String("renderer", "gnuplot", "Display backend: gnuplot, sdl or term.")
	scale := flag.Int("scale", 4, "Pixels per cell for the sdl renderer.")
	flag.Parse()

	strategy, err := gol.ParseStrategy(*mode)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	params.Strategy = strategy
	params.Pattern = gol.Pattern(*game)
	params.ImageWidth = *size
	params.ImageHeight = *size

	fmt.Printf("probability: %f\n", params.Probability)
	fmt.Printf("Random # generator seed: %d\n", params.Seed)
	fmt.Printf("Mode: %v, threads: %d\n", params.Strategy, params.Threads)

	keyPresses := make(chan rune, 10)
	events := make(chan gol.Event, 1000)

	var sink gol.FrameSink
	var window *sdl.Window
	quiet := false
	switch {
	case *noDisplay:
		go readKeys(os.Stdin, keyPresses)
	case *renderer == "gnuplot":
		gnuplot := plot.NewGnuplot()
		defer gnuplot.Close()
		sink = gnuplot
		go readKeys(os.Stdin, keyPresses)
	case *renderer == "sdl":
		window, err = sdl.NewWindow(*size, *size, int32(*scale), keyPresses)
		if err != nil {
			log.Printf("Display disabled: %v", err)
		} else {
			sink = window
		}
		go readKeys(os.Stdin, keyPresses)
	case *renderer == "term":
		screen := term.New(keyPresses)
		defer screen.Close()
		sink = screen
		quiet = true
	default:
		log.Fatalf("Configuration error: unknown renderer %q", *renderer)
	}

	start := time.Now()
	result := make(chan error, 1)
	go func() {
		result <- gol.Run(params, sink, events, keyPresses)
	}()

	done := make(chan struct{})
	final := make(chan gol.FinalTurnComplete, 1)
	go func() {
		defer close(done)
		printEvents(events, params.Step, quiet, final)
	}()
	if window != nil {
		window.Run(done)
	}
	<-done

	if err := <-result; err != nil {
		log.Fatalf("Error: %v", err)
	}
	elapsed := time.Since(start)
	if quiet {
		return
	}
	last := <-final
	fmt.Printf("Completed %d generations, %d cells alive\n", last.CompletedTurns, len(last.Alive))
	fmt.Printf("Running time for the iterations: %f sec.\n", elapsed.Seconds())
}

// readKeys forwards every rune typed on r, including the newline of enter.
func readKeys(r io.Reader, keyPresses chan<- rune) {
	reader := bufio.NewReader(r)
	for {
		key, _, err := reader.ReadRune()
		if err != nil {
			return
		}
		keyPresses <- key
	}
}

func printEvents(events <-chan gol.Event, step, quiet bool, final chan<- gol.FinalTurnComplete) {
	for event := range events {
		switch e := event.(type) {
		case gol.FinalTurnComplete:
			final <- e
		case gol.StateChange:
			if quiet {
				continue
			}
			if step && e.NewState == gol.Paused {
				fmt.Printf("Finished with step %d\n", e.CompletedTurns)
				fmt.Println("Press enter to continue.")
			} else if !step {
				fmt.Printf("Completed Turns %-8v %v\n", e.CompletedTurns, e)
			}
		case gol.TurnComplete:
			if step && !quiet {
				fmt.Printf("Population at iteration %d = %d\n", e.CompletedTurns, e.Population)
			}
		case gol.AliveCellsCount:
			if !quiet {
				fmt.Printf("Completed Turns %-8v %v\n", e.CompletedTurns, e)
			}
		}
	}
}
