package workers

import (
	"context"
	"sync"
	"time"

	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/store"
)

// DefaultRefreshInterval is used when a Refresher is started with a
// non-positive interval.
const DefaultRefreshInterval = time.Minute

// Refresher periodically refetches every store collection so long-lived
// sessions (dashboards, watch mode) keep showing current data. The job
// is idle until Start is called.
type Refresher struct {
	stores   *store.Stores
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefresher creates a Refresher over the given stores.
func NewRefresher(stores *store.Stores, interval time.Duration, log *logger.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{stores: stores, interval: interval, log: log}
}

// Start stops any previously running job, then launches a background
// goroutine that refetches all stores every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := r.stores.RefreshAll(jobCtx); err != nil {
					r.log.Warn().Err(err).Msg("background refresh finished with errors")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. No-op when the job is not running.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}
