package gol

import (
	"errors"
	"log"
)

// FrameSink consumes a completed generation. Render is called synchronously by whichever
// goroutine owns read access to world for that generation; world must not be retained
// after Render returns.
type FrameSink interface {
	Render(turn int, world *Grid) error
}

// frameReporter wraps the configured sink so a failing renderer never stops the run.
// It is only used by one goroutine at a time.
type frameReporter struct {
	sink     FrameSink
	disabled bool
}

func newFrameReporter(sink FrameSink) *frameReporter {
	return &frameReporter{sink: sink, disabled: sink == nil}
}

// render hands world to the sink. A sink reporting ErrRendererUnavailable is logged once
// and skipped from then on; any other failure is logged and the next frame is tried again.
func (f *frameReporter) render(turn int, world *Grid) error {
	if f.disabled {
		return nil
	}
	err := f.sink.Render(turn, world)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrRendererUnavailable) {
		f.disabled = true
		log.Printf("Display disabled: %v", err)
		return err
	}
	log.Printf("Frame %d not rendered: %v", turn, err)
	return err
}
