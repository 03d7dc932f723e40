package timekeeper

import "time"

// State represents the current TimeKeeper phase.
type State string

const (
	StateIdle       State = "idle"
	StateWork       State = "work"
	StateShortBreak State = "short_break"
	StateLongBreak  State = "long_break"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventProgress    EventType = "progress"
	EventReset       EventType = "reset"
)

// Snapshot is a consistent copy of the timer state.
type Snapshot struct {
	State            State
	Repetitions      int
	RemainingSeconds int
}

// Clock returns the remaining time as MM:SS.
func (snapshot Snapshot) Clock() string {
	return FormatClock(snapshot.RemainingSeconds)
}

// Marks returns one check mark per completed work/break pair.
func (snapshot Snapshot) Marks() string {
	return CompletionMarks(snapshot.Repetitions)
}

// Label returns the display title of the current phase.
func (snapshot Snapshot) Label() string {
	return snapshot.State.Label()
}

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
