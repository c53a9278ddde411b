package pool

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Submit once the pool has been closed.
var ErrClosed = errors.New("worker pool is closed")

// DefaultQueueDepth is the task queue capacity used when New is called
// with a non-positive queue size.
const DefaultQueueDepth = 256

// Task is a unit of work executed by one worker.
type Task func()

// Pool runs tasks on a fixed set of workers, in submission order.
type Pool struct {
	tasks  chan Task
	wg     sync.WaitGroup
	closed atomic.Bool

	submitted atomic.Uint64
	completed atomic.Uint64
	panicked  atomic.Uint64
}

// Option configures a Pool during creation.
type Option func(*config)

type config struct {
	queueDepth int
}

// WithQueueDepth sets the task queue capacity.
func WithQueueDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueDepth = n
		}
	}
}

// New starts a pool with the given number of workers; values below one
// are raised to one.
func New(workers int, opts ...Option) *Pool {
	if workers < 1 {
		workers = 1
	}

	cfg := &config{queueDepth: DefaultQueueDepth}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Pool{
		tasks: make(chan Task, cfg.queueDepth),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Submit queues a task for execution. It blocks while the queue is full
// and returns ErrClosed once the pool is shutting down. Nil tasks are
// ignored.
func (p *Pool) Submit(t Task) (err error) {
	if t == nil {
		return nil
	}
	if p.closed.Load() {
		return ErrClosed
	}

	// Counted before the send so a fast worker can never drive
	// Completed past Submitted.
	p.submitted.Add(1)

	// The closed check above races with Close; the recover keeps a send
	// on the closed channel from crashing the caller.
	defer func() {
		if recover() != nil {
			p.submitted.Add(^uint64(0))
			err = ErrClosed
		}
	}()

	p.tasks <- t
	return nil
}

// Close stops accepting tasks, drains the queue, and joins the workers.
// It is idempotent and safe to call concurrently with Submit.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	close(p.tasks)
	p.wg.Wait()
}

// Stats reports pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
	}
}

// Stats holds pool counters. Pending work is Submitted - Completed.
type Stats struct {
	Submitted uint64
	Completed uint64
	Panicked  uint64
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		p.run(t)
	}
}

func (p *Pool) run(t Task) {
	defer func() {
		if recover() != nil {
			p.panicked.Add(1)
		}
		p.completed.Add(1)
	}()
	t()
}
