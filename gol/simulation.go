package gol

import (
	"time"
)

// Simulation holds the state of one run: both cell buffers, the population of each
// role and the generation counter. population[update] describes the buffer being
// written and population[plot] the buffer handed to the frame sink; both indices
// swap together with the buffers.
type Simulation struct {
	p          Params
	current    *Grid
	next       *Grid
	population [2]int
	update     int
	plot       int
	turn       int

	frames *frameReporter
	pool   *workerPool
	events chan<- Event
	keys   <-chan rune
	ticker *time.Ticker
	paused bool
}

// NewSimulation validates p, allocates both buffers and seeds the current one.
func NewSimulation(p Params, sink FrameSink) (*Simulation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	current, err := NewGrid(p.ImageHeight+2, p.ImageWidth+2)
	if err != nil {
		return nil, err
	}
	next, err := NewGrid(p.ImageHeight+2, p.ImageWidth+2)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		p:       p,
		current: current,
		next:    next,
		update:  0,
		plot:    1,
		frames:  newFrameReporter(sink),
	}
	s.population[s.plot], err = seedWorld(p, current)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// World returns the buffer holding the latest completed generation.
func (s *Simulation) World() *Grid { return s.current }

// Population returns the live cell count of World.
func (s *Simulation) Population() int { return s.population[s.plot] }

// Turn returns the number of completed generations.
func (s *Simulation) Turn() int { return s.turn }

// running is the termination predicate, evaluated only by the loop that owns the run.
func (s *Simulation) running() bool {
	return s.turn < s.p.Turns && s.population[s.plot] > 0
}

// swap exchanges buffer ownership and the population roles. No cells are copied.
func (s *Simulation) swap() {
	s.current, s.next = s.next, s.current
	s.update, s.plot = s.plot, s.update
	s.turn++
}

func (s *Simulation) emit(event Event) {
	if s.events != nil {
		s.events <- event
	}
}

// render sends one frame to the sink and reports the outcome.
func (s *Simulation) render(turn int, world *Grid) {
	if s.frames.disabled {
		return
	}
	err := s.frames.render(turn, world)
	s.emit(FrameRendered{turn, err})
}
