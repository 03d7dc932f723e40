package timekeeper

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Ticker is a recurring tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	// NewTicker builds the tick source of each countdown. Defaults to time.Ticker.
	NewTicker func(time.Duration) Ticker
}

type systemTicker struct {
	ticker *time.Ticker
}

func newSystemTicker(interval time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

func (value systemTicker) C() <-chan time.Time {
	return value.ticker.C
}

func (value systemTicker) Stop() {
	value.ticker.Stop()
}

// TimeKeeper is the Pomodoro phase state machine.
type TimeKeeper struct {
	mu          sync.Mutex
	config      model.PomodoroConfig
	options     Config
	state       State
	repetitions int
	remaining   int
	generation  uint64
	loopStop    chan struct{}
	events      []chan Event
	stopped     bool
}

// New creates an idle TimeKeeper.
func New(config model.PomodoroConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = newSystemTicker
	}

	return &TimeKeeper{
		config:  config,
		options: options,
		state:   StateIdle,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start advances to the next repetition and begins its countdown.
// A countdown already in progress is replaced.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.stopped {
		return
	}
	keeper.startLocked()
}

// Tick counts one second down. At zero the next phase starts on its own.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.tickLocked()
}

// Reset cancels the countdown and returns to idle.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.stopped {
		return
	}
	keeper.cancelLoopLocked()
	keeper.repetitions = 0
	keeper.remaining = 0
	keeper.state = StateIdle
	keeper.emitLocked(EventReset)
}

// Stop terminates the countdown and closes observers. The keeper is unusable afterwards.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.cancelLoopLocked()
	keeper.stopped = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// RemainingSeconds returns the seconds left in the current phase.
func (keeper *TimeKeeper) RemainingSeconds() int {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.remaining
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

func (keeper *TimeKeeper) startLocked() {
	keeper.repetitions++
	keeper.state = PhaseFor(keeper.repetitions, keeper.config.LongBreakEvery)
	keeper.remaining = int(keeper.state.Duration(keeper.config) / time.Second)

	keeper.cancelLoopLocked()
	keeper.loopStop = make(chan struct{})
	go keeper.run(keeper.generation, keeper.loopStop)

	keeper.emitLocked(EventPhaseChange)
}

func (keeper *TimeKeeper) tickLocked() {
	if keeper.stopped || keeper.state == StateIdle {
		return
	}
	if keeper.remaining > 0 {
		keeper.remaining--
	}
	keeper.emitLocked(EventProgress)
	if keeper.remaining == 0 {
		keeper.startLocked()
	}
}

// cancelLoopLocked stops the active tick loop and voids ticks it may still deliver.
func (keeper *TimeKeeper) cancelLoopLocked() {
	keeper.generation++
	if keeper.loopStop != nil {
		close(keeper.loopStop)
		keeper.loopStop = nil
	}
}

func (keeper *TimeKeeper) run(generation uint64, stop <-chan struct{}) {
	ticker := keeper.options.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			keeper.tickFrom(generation)
		}
	}
}

func (keeper *TimeKeeper) tickFrom(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if generation != keeper.generation {
		return
	}
	keeper.tickLocked()
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		State:            keeper.state,
		Repetitions:      keeper.repetitions,
		RemainingSeconds: keeper.remaining,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(),
		At:       time.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
