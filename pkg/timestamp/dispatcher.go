package timestamp

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Dispatcher is a real-time TickSource for hosts without an event loop of their own.
// Timers run on background goroutines but every callback, and every function
// passed to Post, runs on the goroutine that called Run, one at a time.
type Dispatcher struct {
	due  chan *dispatchHandle
	work chan func()
}

// NewDispatcher creates an idle Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		due:  make(chan *dispatchHandle),
		work: make(chan func()),
	}
}

type dispatchHandle struct {
	fn        func()
	cancelled atomic.Bool
	stop      chan struct{}
	once      sync.Once
}

// Schedule starts a ticker that hands fn to the run loop every period.
// Ticks that arrive while the run loop is busy are dropped, not queued.
func (d *Dispatcher) Schedule(period time.Duration, fn func()) TickHandle {
	h := &dispatchHandle{fn: fn, stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case d.due <- h:
				case <-h.stop:
					return
				}
			case <-h.stop:
				return
			}
		}
	}()
	return h
}

// Cancel stops the ticker. Called from the run loop it takes effect at once:
// a tick already handed over is discarded.
func (h *dispatchHandle) Cancel() {
	h.once.Do(func() {
		h.cancelled.Store(true)
		close(h.stop)
	})
}

// Post runs fn on the run loop. It blocks until the loop accepts fn or ctx is done,
// so it must not be called from the run loop itself.
func (d *Dispatcher) Post(ctx context.Context, fn func()) error {
	select {
	case d.work <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes ticks and posted functions until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case h := <-d.due:
			if !h.cancelled.Load() {
				h.fn()
			}
		case fn := <-d.work:
			fn()
		}
	}
}
