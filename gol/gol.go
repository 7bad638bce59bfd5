package gol

import (
	"fmt"
	"strings"
	"time"
)

// Strategy selects how generations are scheduled.
type Strategy uint8

const (
	// ForkJoin splits every generation across Threads workers and joins them before the swap.
	ForkJoin Strategy = iota
	// Pipeline runs one compute actor and one visualise actor that hand generations over in turn.
	Pipeline
)

func (s Strategy) String() string {
	switch s {
	case ForkJoin:
		return "forkjoin"
	case Pipeline:
		return "pipeline"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a CLI mode name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "forkjoin", "fork-join", "":
		return ForkJoin, nil
	case "pipeline":
		return Pipeline, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, name)
}

// Params provides the details of how to run the Game of Life.
// ImageWidth and ImageHeight count interior cells only.
type Params struct {
	Turns       int
	Threads     int
	ImageWidth  int
	ImageHeight int
	Probability float64
	Seed        int64
	Pattern     Pattern
	Strategy    Strategy
	Step        bool
}

func (p Params) validate() error {
	switch {
	case p.ImageWidth < 1 || p.ImageHeight < 1:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidParams, p.ImageWidth, p.ImageHeight)
	case p.Turns < 0:
		return fmt.Errorf("%w: %d turns", ErrInvalidParams, p.Turns)
	case p.Threads < 1:
		return fmt.Errorf("%w: %d threads", ErrInvalidParams, p.Threads)
	case p.Probability < 0 || p.Probability > 1:
		return fmt.Errorf("%w: probability %v", ErrInvalidParams, p.Probability)
	case p.Strategy != ForkJoin && p.Strategy != Pipeline:
		return fmt.Errorf("%w: %v", ErrInvalidParams, p.Strategy)
	}
	return nil
}

// Run starts the processing of Game of Life under the strategy named in p.
// A nil sink disables display. events, when non-nil, is closed before Run returns.
// Only configuration and allocation errors are returned; frame sink failures are reported
// through events and the log.
func Run(p Params, sink FrameSink, events chan<- Event, keyPresses <-chan rune) error {
	if events != nil {
		defer close(events)
	}

	s, err := NewSimulation(p, sink)
	if err != nil {
		return err
	}
	s.events = events
	s.keys = keyPresses

	// Alive timer
	s.ticker = time.NewTicker(2 * time.Second)
	defer s.ticker.Stop()

	s.emit(StateChange{s.turn, Executing})
	switch p.Strategy {
	case ForkJoin:
		s.runForkJoin()
	case Pipeline:
		s.runPipeline()
	}

	s.emit(FinalTurnComplete{s.turn, s.current.AliveCells()})
	s.emit(StateChange{s.turn, Quitting})
	return nil
}
