// Package sdl shows generations in an SDL window. All SDL calls happen on the goroutine
// running Window.Run, which must be the locked main thread.
package sdl

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/lifeengine/gol"
)

// request is one Render call waiting for the main thread.
type request struct {
	turn  int
	world *gol.Grid
	done  chan error
}

// Window is a gol.FrameSink. Render blocks until the main thread has drawn the frame,
// so the caller keeps exclusive read access to the grid for exactly that long.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	requests chan request
	closed   chan struct{}
	keys     chan<- rune
}

// NewWindow opens a window sized for an interior of width x height cells.
// It must be called on the main thread.
func NewWindow(width, height int, scale int32, keys chan<- rune) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("%w: %v", gol.ErrRendererUnavailable, err)
	}
	window, err := sdl.CreateWindow("Game of Life", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width)*scale, int32(height)*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", gol.ErrRendererUnavailable, err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("%w: %v", gol.ErrRendererUnavailable, err)
	}
	return &Window{
		window:   window,
		renderer: renderer,
		scale:    scale,
		requests: make(chan request),
		closed:   make(chan struct{}),
		keys:     keys,
	}, nil
}

// Render passes world to the main thread and waits for it to be drawn.
func (w *Window) Render(turn int, world *gol.Grid) error {
	done := make(chan error, 1)
	select {
	case w.requests <- request{turn, world, done}:
	case <-w.closed:
		return fmt.Errorf("%w: window closed", gol.ErrRendererUnavailable)
	}
	return <-done
}

// Run serves Render calls and window events until stop is closed or the window is closed
// by the user. It destroys the window before returning.
func (w *Window) Run(stop <-chan struct{}) {
	defer w.destroy()
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case req := <-w.requests:
			req.done <- w.draw(req.turn, req.world)
		case <-ticker.C:
			if !w.pollEvents() {
				return
			}
		}
	}
}

// pollEvents drains SDL events and reports false when the window was closed.
func (w *Window) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.sendKey('q')
			return false
		case *sdl.KeyboardEvent:
			if e.State != sdl.PRESSED {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_q, sdl.K_ESCAPE:
				w.sendKey('q')
			case sdl.K_p:
				w.sendKey('p')
			case sdl.K_RETURN, sdl.K_SPACE:
				w.sendKey('\n')
			}
		}
	}
	return true
}

func (w *Window) sendKey(key rune) {
	if w.keys == nil {
		return
	}
	select {
	case w.keys <- key:
	default:
	}
}

func (w *Window) draw(turn int, world *gol.Grid) error {
	w.window.SetTitle(fmt.Sprintf("Iter = %d", turn))
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return err
	}
	for _, cell := range world.AliveCells() {
		rect := sdl.Rect{
			X: int32(cell.X-1) * w.scale,
			Y: int32(cell.Y-1) * w.scale,
			W: w.scale,
			H: w.scale,
		}
		if err := w.renderer.FillRect(&rect); err != nil {
			return err
		}
	}
	w.renderer.Present()
	return nil
}

func (w *Window) destroy() {
	close(w.closed)
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}
