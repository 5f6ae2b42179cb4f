package animation

import (
	"context"
	"sync"
	"time"
)

// FrameFunc receives the time of each frame tick.
type FrameFunc func(now time.Time)

// Driver runs a single frame loop. Starting a new loop replaces the old one.
type Driver struct {
	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewDriver creates a frame driver ticking every interval.
func NewDriver(interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Driver{interval: interval}
}

// Start launches the frame loop, cancelling any loop already running.
func (driver *Driver) Start(parent context.Context, frame FrameFunc) {
	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	driver.mu.Lock()
	oldCancel, oldDone := driver.cancel, driver.done
	driver.cancel = cancel
	driver.done = done
	driver.mu.Unlock()

	if oldCancel != nil {
		oldCancel()
		<-oldDone
	}
	go driver.run(runCtx, frame, done)
}

// Stop terminates the active loop and waits for it to exit.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	cancel := driver.cancel
	done := driver.done
	driver.cancel = nil
	driver.done = nil
	driver.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (driver *Driver) run(ctx context.Context, frame FrameFunc, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(driver.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tickTime := <-ticker.C:
			frame(tickTime)
		}
	}
}
