package gol

import "sync"

// frame is one generation handed from the compute actor to the visualise actor.
type frame struct {
	turn  int
	world *Grid
}

// handshake is a single-slot hand-off between the compute and visualise actors.
// readyToPlot carries a frame to the visualiser and plotDone carries the
// acknowledgement back, so exactly one frame is in flight at any time.
// Only the compute side decides termination, by closing the handshake.
type handshake struct {
	mu           sync.Mutex
	readyToPlot  *sync.Cond
	plotDone     *sync.Cond
	ready        bool
	plotComplete bool
	closed       bool
	slot         frame
}

func newHandshake() *handshake {
	h := &handshake{}
	h.readyToPlot = sync.NewCond(&h.mu)
	h.plotDone = sync.NewCond(&h.mu)
	return h
}

// publish offers f to the visualiser. Every publish must be matched by one awaitPlotted
// before the next publish.
func (h *handshake) publish(f frame) {
	h.mu.Lock()
	h.slot = f
	h.ready = true
	h.readyToPlot.Signal()
	h.mu.Unlock()
}

// awaitPlotted blocks until the visualiser has finished with the last published frame.
func (h *handshake) awaitPlotted() {
	h.mu.Lock()
	for !h.plotComplete {
		h.plotDone.Wait()
	}
	h.plotComplete = false
	h.mu.Unlock()
}

// close tells the visualiser no further frame will come.
func (h *handshake) close() {
	h.mu.Lock()
	h.closed = true
	h.readyToPlot.Broadcast()
	h.mu.Unlock()
}

// take blocks until a frame is published or the handshake is closed.
// ok is false once closed with nothing left to plot.
func (h *handshake) take() (f frame, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for !h.ready && !h.closed {
		h.readyToPlot.Wait()
	}
	if !h.ready {
		return frame{}, false
	}
	h.ready = false
	return h.slot, true
}

// plotted acknowledges the frame returned by the last take.
func (h *handshake) plotted() {
	h.mu.Lock()
	h.plotComplete = true
	h.plotDone.Signal()
	h.mu.Unlock()
}
