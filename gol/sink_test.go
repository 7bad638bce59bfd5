package gol

import (
	"errors"
	"fmt"
	"testing"
)

type failingSink struct {
	err   error
	calls int
}

func (f *failingSink) Render(turn int, world *Grid) error {
	f.calls++
	return f.err
}

func frameResults(events []Event) (ok, failed int) {
	for _, event := range events {
		if e, isFrame := event.(FrameRendered); isFrame {
			if e.Err == nil {
				ok++
			} else {
				failed++
			}
		}
	}
	return ok, failed
}

func TestUnavailableRendererDisablesDisplay(t *testing.T) {
	for _, strategy := range []Strategy{ForkJoin, Pipeline} {
		sink := &failingSink{err: fmt.Errorf("%w: no gnuplot", ErrRendererUnavailable)}
		p := Params{ImageWidth: 10, ImageHeight: 10, Turns: 5, Threads: 2, Pattern: Block, Strategy: strategy}
		events := runEvents(t, p, sink, nil)

		if sink.calls != 1 {
			t.Errorf("%v: sink called %d times after reporting unavailable", strategy, sink.calls)
		}
		if ok, failed := frameResults(events); ok != 0 || failed != 1 {
			t.Errorf("%v: %d frames ok, %d failed; want 0 and 1", strategy, ok, failed)
		}
		if final := finalTurn(t, events); final.CompletedTurns != 5 {
			t.Errorf("%v: run stopped at %d", strategy, final.CompletedTurns)
		}
	}
}

func TestRenderFailureDoesNotAbort(t *testing.T) {
	sink := &failingSink{err: errors.New("broken pipe")}
	p := Params{ImageWidth: 10, ImageHeight: 10, Turns: 5, Threads: 1, Pattern: Block}
	events := runEvents(t, p, sink, nil)

	if sink.calls != 6 {
		t.Errorf("sink called %d times, want 6", sink.calls)
	}
	if _, failed := frameResults(events); failed != 6 {
		t.Errorf("%d failed frames reported, want 6", failed)
	}
	if final := finalTurn(t, events); final.CompletedTurns != 5 {
		t.Errorf("run stopped at %d", final.CompletedTurns)
	}
}

func TestNilSinkRendersNothing(t *testing.T) {
	events := runEvents(t, Params{ImageWidth: 10, ImageHeight: 10, Turns: 2, Threads: 1, Pattern: Block}, nil, nil)
	if ok, failed := frameResults(events); ok+failed != 0 {
		t.Errorf("%d frames reported with display disabled", ok+failed)
	}
}
