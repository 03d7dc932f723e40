package tray

import (
	"context"
	"sync"
	"time"

	"pomodoro/internal/core/timekeeper"
)

// RemainingSource exposes the seconds left in the running phase.
type RemainingSource interface {
	RemainingSeconds() int
}

// Publisher shows a clock string. It returns false when the icon is unavailable.
type Publisher interface {
	Publish(clock string) bool
}

// Mirror republishes the remaining time once per interval while running.
// It only reads from its source.
type Mirror struct {
	mu        sync.Mutex
	source    RemainingSource
	publisher Publisher
	interval  time.Duration
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewMirror creates a stopped mirror.
func NewMirror(source RemainingSource, publisher Publisher, interval time.Duration) *Mirror {
	if interval <= 0 {
		interval = time.Second
	}
	return &Mirror{
		source:    source,
		publisher: publisher,
		interval:  interval,
	}
}

// Start launches the polling loop if it is not running yet.
func (mirror *Mirror) Start() {
	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	if mirror.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	mirror.cancel = cancel
	mirror.done = done

	go mirror.run(ctx, done)
}

// Stop cancels the polling loop and waits for it to exit.
func (mirror *Mirror) Stop() {
	mirror.mu.Lock()
	cancel := mirror.cancel
	done := mirror.done
	mirror.cancel = nil
	mirror.done = nil
	mirror.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the polling loop is active.
func (mirror *Mirror) Running() bool {
	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	return mirror.cancel != nil
}

func (mirror *Mirror) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(mirror.interval)
	defer ticker.Stop()

	mirror.publish()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			mirror.publish()
		}
	}
}

func (mirror *Mirror) publish() {
	clock := timekeeper.FormatClock(mirror.source.RemainingSeconds())
	_ = mirror.publisher.Publish(clock)
}
