package timekeeper

import (
	"fmt"
	"strings"
	"time"

	"pomodoro/internal/core/model"
)

const completionMark = "✔"

// PhaseFor returns the phase of the 1-based repetition n.
func PhaseFor(n int, longBreakEvery int) State {
	if n <= 0 {
		return StateIdle
	}
	if longBreakEvery > 0 && n%longBreakEvery == 0 {
		return StateLongBreak
	}
	if n%2 == 0 {
		return StateShortBreak
	}
	return StateWork
}

// Duration returns how long the phase lasts under config.
func (state State) Duration(config model.PomodoroConfig) time.Duration {
	switch state {
	case StateWork:
		return config.Work
	case StateShortBreak:
		return config.ShortBreak
	case StateLongBreak:
		return config.LongBreak
	default:
		return 0
	}
}

// Label returns the title shown above the clock.
func (state State) Label() string {
	switch state {
	case StateWork:
		return "Work!"
	case StateShortBreak:
		return "Short break"
	case StateLongBreak:
		return "Long break"
	default:
		return "Timer"
	}
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// CompletionMarks returns floor(repetitions/2) check marks.
func CompletionMarks(repetitions int) string {
	if repetitions < 2 {
		return ""
	}
	return strings.Repeat(completionMark, repetitions/2)
}
