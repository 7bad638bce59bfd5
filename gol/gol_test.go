package gol

import (
	"errors"
	"testing"
)

func TestRunRejectsParams(t *testing.T) {
	valid := Params{ImageWidth: 10, ImageHeight: 10, Turns: 1, Threads: 1, Pattern: Block}
	tests := []struct {
		name   string
		modify func(p *Params)
		want   error
	}{
		{"zero width", func(p *Params) { p.ImageWidth = 0 }, ErrInvalidParams},
		{"negative turns", func(p *Params) { p.Turns = -1 }, ErrInvalidParams},
		{"no threads", func(p *Params) { p.Threads = 0 }, ErrInvalidParams},
		{"probability", func(p *Params) { p.Probability = 1.5 }, ErrInvalidParams},
		{"strategy", func(p *Params) { p.Strategy = 7 }, ErrInvalidParams},
		{"pattern", func(p *Params) { p.Pattern = -1 }, ErrUnknownPattern},
		{"too large", func(p *Params) { p.ImageWidth, p.ImageHeight = 1<<16, 1<<16 }, ErrGridTooLarge},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := valid
			test.modify(&p)
			events := make(chan Event, 10)
			err := Run(p, nil, events, nil)
			if !errors.Is(err, test.want) {
				t.Fatalf("err = %v, want %v", err, test.want)
			}
			if _, open := <-events; open {
				t.Error("events not closed after a configuration error")
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{"forkjoin": ForkJoin, "Pipeline": Pipeline, "": ForkJoin} {
		got, err := ParseStrategy(name)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseStrategy("threads"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("unknown mode accepted: %v", err)
	}
}

func TestQuitKey(t *testing.T) {
	for _, strategy := range []Strategy{ForkJoin, Pipeline} {
		keys := make(chan rune, 1)
		keys <- 'q'
		p := Params{ImageWidth: 10, ImageHeight: 10, Turns: 50, Threads: 2, Pattern: Block, Strategy: strategy}
		events := runEvents(t, p, nil, keys)
		if final := finalTurn(t, events); final.CompletedTurns != 1 {
			t.Errorf("%v: quit at turn %d, want 1", strategy, final.CompletedTurns)
		}
		if last := events[len(events)-1]; last != (StateChange{1, Quitting}) {
			t.Errorf("%v: last event %v, want Quitting", strategy, last)
		}
	}
}

func TestStepMode(t *testing.T) {
	for _, strategy := range []Strategy{ForkJoin, Pipeline} {
		keys := make(chan rune, 3)
		keys <- '\n'
		keys <- '\n'
		keys <- 'q'
		p := Params{ImageWidth: 10, ImageHeight: 10, Turns: 10, Threads: 1, Pattern: Block, Strategy: strategy, Step: true}
		events := runEvents(t, p, nil, keys)

		paused := 0
		for _, event := range events {
			if e, ok := event.(StateChange); ok && e.NewState == Paused {
				paused++
				if e.CompletedTurns != paused {
					t.Errorf("%v: paused at turn %d, want %d", strategy, e.CompletedTurns, paused)
				}
			}
		}
		if paused != 3 {
			t.Errorf("%v: paused %d times, want 3", strategy, paused)
		}
		if final := finalTurn(t, events); final.CompletedTurns != 3 {
			t.Errorf("%v: stopped at turn %d, want 3", strategy, final.CompletedTurns)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	keys := make(chan rune, 2)
	keys <- 'p'
	keys <- 'p'
	p := Params{ImageWidth: 10, ImageHeight: 10, Turns: 4, Threads: 1, Pattern: Block}
	events := runEvents(t, p, nil, keys)

	var states []State
	for _, event := range events {
		if e, ok := event.(StateChange); ok {
			states = append(states, e.NewState)
		}
	}
	want := []State{Executing, Paused, Executing, Quitting}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("states = %v, want %v", states, want)
		}
	}
	if final := finalTurn(t, events); final.CompletedTurns != 4 {
		t.Errorf("stopped at turn %d, want 4", final.CompletedTurns)
	}
}

func TestClosedKeysResume(t *testing.T) {
	keys := make(chan rune, 1)
	keys <- 'p'
	close(keys)
	p := Params{ImageWidth: 10, ImageHeight: 10, Turns: 3, Threads: 1, Pattern: Block}
	events := runEvents(t, p, nil, keys)
	if final := finalTurn(t, events); final.CompletedTurns != 3 {
		t.Errorf("stopped at turn %d, want 3", final.CompletedTurns)
	}
}
