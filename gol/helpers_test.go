package gol

import (
	"sync"
	"testing"
	"time"
)

// runEvents runs p to completion and returns every event sent.
func runEvents(t *testing.T, p Params, sink FrameSink, keys <-chan rune) []Event {
	t.Helper()
	events := make(chan Event)
	result := make(chan error, 1)
	go func() {
		result <- Run(p, sink, events, keys)
	}()
	var all []Event
	for event := range events {
		all = append(all, event)
	}
	if err := <-result; err != nil {
		t.Fatalf("Run: %v", err)
	}
	return all
}

func turnsCompleted(events []Event) []TurnComplete {
	var turns []TurnComplete
	for _, event := range events {
		if e, ok := event.(TurnComplete); ok {
			turns = append(turns, e)
		}
	}
	return turns
}

func finalTurn(t *testing.T, events []Event) FinalTurnComplete {
	t.Helper()
	for _, event := range events {
		if e, ok := event.(FinalTurnComplete); ok {
			return e
		}
	}
	t.Fatal("no FinalTurnComplete event")
	return FinalTurnComplete{}
}

// recordingSink keeps a copy of every frame. With hold set it keeps the grid for that
// long and records whether the grid changed while it was being rendered.
type recordingSink struct {
	mu     sync.Mutex
	hold   time.Duration
	turns  []int
	frames []*Grid
	torn   []int
	border []int
}

func (r *recordingSink) Render(turn int, world *Grid) error {
	before := world.Clone()
	if r.hold > 0 {
		time.Sleep(r.hold)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !before.Equal(world) {
		r.torn = append(r.torn, turn)
	}
	if !world.BorderClear() {
		r.border = append(r.border, turn)
	}
	r.turns = append(r.turns, turn)
	r.frames = append(r.frames, before)
	return nil
}

func randomParams(width, height, turns, threads int, strategy Strategy) Params {
	return Params{
		Turns:       turns,
		Threads:     threads,
		ImageWidth:  width,
		ImageHeight: height,
		Probability: 0.35,
		Seed:        42,
		Pattern:     Random,
		Strategy:    strategy,
	}
}
