package preferences

import (
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/theme"
)

// Settings defines the application defaults.
type Settings struct {
	Title        string
	WindowWidth  float32
	WindowHeight float32
	AlwaysOnTop  bool
	Theme        theme.Name

	Work           time.Duration
	ShortBreak     time.Duration
	LongBreak      time.Duration
	LongBreakEvery int
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() Settings {
	pomodoro := model.DefaultPomodoroConfig()
	return Settings{
		Title:        "Pomodoro",
		WindowWidth:  300,
		WindowHeight: 220,
		AlwaysOnTop:  true,
		Theme:        theme.NameLight,

		Work:           pomodoro.Work,
		ShortBreak:     pomodoro.ShortBreak,
		LongBreak:      pomodoro.LongBreak,
		LongBreakEvery: pomodoro.LongBreakEvery,
	}
}

// TimeKeeperConfig converts settings to a PomodoroConfig.
func (settings Settings) TimeKeeperConfig() model.PomodoroConfig {
	return model.PomodoroConfig{
		Work:           settings.Work,
		ShortBreak:     settings.ShortBreak,
		LongBreak:      settings.LongBreak,
		LongBreakEvery: settings.LongBreakEvery,
	}
}
