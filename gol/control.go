package gol

import "time"

// control runs between generations on the goroutine that owns termination.
// It reports the alive count on the ticker, reacts to key presses and holds the run
// while paused. It returns false once the run should stop.
func (s *Simulation) control() bool {
	if s.p.Step && s.keys != nil {
		s.emit(StateChange{s.turn, Paused})
		key, ok := <-s.keys
		if !ok {
			s.keys = nil
		} else if key == 'q' {
			return false
		}
		s.emit(StateChange{s.turn, Executing})
		return true
	}

	var tick <-chan time.Time
	if s.ticker != nil {
		tick = s.ticker.C
	}
	for {
		if !s.paused {
			select {
			case <-tick:
				s.emit(AliveCellsCount{s.turn, s.population[s.plot]})
			case key, ok := <-s.keys:
				if !s.handleKey(key, ok) {
					return false
				}
			default:
				return true
			}
			continue
		}
		// Paused: block until a key arrives.
		select {
		case <-tick:
			s.emit(AliveCellsCount{s.turn, s.population[s.plot]})
		case key, ok := <-s.keys:
			if !s.handleKey(key, ok) {
				return false
			}
		}
	}
}

func (s *Simulation) handleKey(key rune, ok bool) bool {
	if !ok {
		s.keys = nil
		if s.paused {
			s.paused = false
			s.emit(StateChange{s.turn, Executing})
		}
		return true
	}
	switch key {
	case 'q':
		return false
	case 'p':
		s.paused = !s.paused
		if s.paused {
			s.emit(StateChange{s.turn, Paused})
		} else {
			s.emit(StateChange{s.turn, Executing})
		}
	}
	return true
}
