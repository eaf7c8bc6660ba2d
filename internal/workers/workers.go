// Package workers manages the client's background jobs. A Worker runs
// until its context is cancelled or Stop is called; the Workers
// aggregate starts and stops a set of them as a unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle. Start must not
// block; Stop blocks until the job has fully exited and is safe to call
// when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Workers runs multiple workers as one unit.
type Workers struct {
	workers []Worker
}

// New bundles the given workers.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Start launches every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker and waits for each to exit.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
