package gol

import "sync"

// runPipeline runs a compute actor and a visualise actor for the whole run.
//
// The compute actor sweeps generation t+1 into next while the visualiser renders
// generation t from current; both only read current. Before the swap the compute actor
// waits for the plot of generation t to complete, so a buffer is never written while
// it is being rendered and no generation is rendered twice.
func (s *Simulation) runPipeline() {
	h := newHandshake()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.compute(h)
	}()
	go func() {
		defer wg.Done()
		s.visualise(h)
	}()
	wg.Wait()
}

// compute is the only place termination is decided in pipeline mode.
func (s *Simulation) compute(h *handshake) {
	defer h.close()

	h.publish(frame{s.turn, s.current})
	for s.running() {
		s.population[s.update] = s.current.evolve(s.next)

		h.awaitPlotted()
		s.swap()
		s.emit(TurnComplete{s.turn, s.population[s.plot]})
		h.publish(frame{s.turn, s.current})

		if !s.control() {
			break
		}
	}
	h.awaitPlotted()
}

// visualise renders every published frame exactly once, outside the handshake lock.
func (s *Simulation) visualise(h *handshake) {
	for {
		f, ok := h.take()
		if !ok {
			return
		}
		s.render(f.turn, f.world)
		h.plotted()
	}
}
