package gol

// runForkJoin advances the world with Threads workers per generation. The initial world
// is rendered as generation 0; every later frame is the buffer produced by the last join.
func (s *Simulation) runForkJoin() {
	defer func() {
		if s.pool != nil {
			s.pool.stop()
		}
	}()

	s.render(s.turn, s.current)

	for s.running() {
		// Workers are only started once a generation actually has to be computed.
		if s.pool == nil {
			s.pool = newWorkerPool(divideRows(s.current.Rows(), s.p.Threads))
		}
		s.population[s.update] = s.pool.step(s.current, s.next)

		s.swap()
		s.emit(TurnComplete{s.turn, s.population[s.plot]})
		s.render(s.turn, s.current)

		if !s.control() {
			break
		}
	}
}
