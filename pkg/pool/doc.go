// Package pool provides a bounded worker pool with a FIFO task queue and
// an explicit shutdown/join contract. A fixed number of workers drain a
// shared queue; when every worker is busy and the queue is full, Submit
// blocks until space frees up, which is the backpressure behavior the
// dispatcher relies on.
//
//	p := pool.New(4)
//	defer p.Close()
//
//	if err := p.Submit(func() { handle(req) }); err != nil {
//		// pool is shutting down
//	}
//
// Close stops accepting work, lets queued tasks drain, and joins the
// workers. Tasks must manage their own panics; the pool recovers them so
// a misbehaving task never takes a worker down.
package pool
