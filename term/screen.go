// Package term renders generations in the terminal with tcell.
package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"uk.ac.bris.cs/lifeengine/gol"
)

var (
	aliveStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	deadStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	titleStyle = tcell.StyleDefault.Bold(true)
)

// Screen is a gol.FrameSink drawing each interior cell as two terminal columns below a
// title line. Key presses are forwarded to the channel given to New.
type Screen struct {
	screen tcell.Screen
	keys   chan<- rune

	once    sync.Once
	initErr error
}

// New returns a sink on the real terminal. keys may be nil.
func New(keys chan<- rune) *Screen {
	return &Screen{keys: keys}
}

// NewWithScreen uses an already created tcell screen, e.g. a simulation screen.
func NewWithScreen(screen tcell.Screen, keys chan<- rune) *Screen {
	return &Screen{screen: screen, keys: keys}
}

func (s *Screen) init() error {
	s.once.Do(func() {
		if s.screen == nil {
			screen, err := tcell.NewScreen()
			if err != nil {
				s.initErr = fmt.Errorf("%w: creating screen: %v", gol.ErrRendererUnavailable, err)
				return
			}
			s.screen = screen
		}
		if err := s.screen.Init(); err != nil {
			s.initErr = fmt.Errorf("%w: initialising screen: %v", gol.ErrRendererUnavailable, err)
			s.screen = nil
			return
		}
		s.screen.Clear()
		go s.pollKeys(s.screen)
	})
	return s.initErr
}

// pollKeys forwards q, p and Enter until the screen is finalised.
func (s *Screen) pollKeys(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok || s.keys == nil {
			continue
		}
		switch {
		case key.Key() == tcell.KeyEnter:
			s.keys <- '\n'
		case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
			s.keys <- 'q'
		case key.Key() == tcell.KeyRune:
			s.keys <- key.Rune()
		}
	}
}

// Render draws the interior of world. The ghost border is not drawn.
func (s *Screen) Render(turn int, world *gol.Grid) error {
	if err := s.init(); err != nil {
		return err
	}
	rows, cols := world.Rows(), world.Cols()
	title := fmt.Sprintf("Iter = %d  population = %d", turn, world.Population())
	for i, r := range title {
		s.screen.SetContent(i, 0, r, nil, titleStyle)
	}
	for r := 1; r != rows-1; r++ {
		row := world.Row(r)
		for c := 1; c != cols-1; c++ {
			style := deadStyle
			if row[c] != 0 {
				style = aliveStyle
			}
			s.screen.SetContent((c-1)*2, r, ' ', nil, style)
			s.screen.SetContent((c-1)*2+1, r, ' ', nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	if s.screen != nil {
		s.screen.Fini()
	}
}
