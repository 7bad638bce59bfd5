package gol

import "sync"

// workerPool keeps one goroutine per row range alive for the whole run. Each step
// publishes the buffers under the condition variable, bumps the generation counter and
// waits for one population subtotal per worker, which is the barrier before the swap.
type workerPool struct {
	cond    *sync.Cond
	turn    int   // generation being computed, guarded by cond.L
	running bool  // cleared to make workers exit, guarded by cond.L
	current *Grid // read from this grid
	next    *Grid // write to this grid
	results chan int
	size    int
}

func newWorkerPool(ranges []RowRange) *workerPool {
	pool := &workerPool{
		cond:    sync.NewCond(new(sync.Mutex)),
		running: true,
		results: make(chan int),
		size:    len(ranges),
	}
	for _, rows := range ranges {
		go pool.worker(rows)
	}
	return pool
}

// step computes one generation from current into next and returns its population.
// It returns only after every worker has finished its rows.
func (pool *workerPool) step(current, next *Grid) int {
	pool.cond.L.Lock()
	pool.current = current
	pool.next = next
	pool.turn++
	pool.cond.Broadcast()
	pool.cond.L.Unlock()

	population := 0
	for i := 0; i != pool.size; i++ {
		population += <-pool.results
	}
	return population
}

// stop makes every worker return. It must not race with step.
func (pool *workerPool) stop() {
	pool.cond.L.Lock()
	pool.running = false
	pool.cond.Broadcast()
	pool.cond.L.Unlock()
}

func (pool *workerPool) worker(rows RowRange) {
	done := 0
	pool.cond.L.Lock()
	for {
		// Woken without a new generation: wait again.
		for pool.running && pool.turn == done {
			pool.cond.Wait()
		}
		if !pool.running {
			pool.cond.L.Unlock()
			return
		}
		done = pool.turn
		current, next := pool.current, pool.next
		pool.cond.L.Unlock()

		// Rows of distinct workers never overlap, so next is written without locking.
		pool.results <- current.evolveRows(next, rows.Start, rows.End)

		pool.cond.L.Lock()
	}
}
