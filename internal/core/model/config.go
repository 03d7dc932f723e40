package model

import "time"

// PomodoroConfig contains the fixed phase durations used by the TimeKeeper.
type PomodoroConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	// LongBreakEvery is the repetition period of the long break.
	LongBreakEvery int
}

// DefaultPomodoroConfig returns the classic 25/5/15 schedule.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		Work:           25 * time.Minute,
		ShortBreak:     5 * time.Minute,
		LongBreak:      15 * time.Minute,
		LongBreakEvery: 8,
	}
}

// MaxDuration returns the longest configured phase.
func (config PomodoroConfig) MaxDuration() time.Duration {
	longest := config.Work
	if config.ShortBreak > longest {
		longest = config.ShortBreak
	}
	if config.LongBreak > longest {
		longest = config.LongBreak
	}
	return longest
}
