package config

import (
	"fmt"
	"time"

	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/theme"

	"gopkg.in/yaml.v3"
)

type yamlWindow struct {
	Title       string  `yaml:"title"`
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	AlwaysOnTop *bool   `yaml:"always_on_top"`
}

type yamlTimer struct {
	WorkMinutes       int `yaml:"work_minutes"`
	ShortBreakMinutes int `yaml:"short_break_minutes"`
	LongBreakMinutes  int `yaml:"long_break_minutes"`
	LongBreakEvery    int `yaml:"long_break_every"`
}

type yamlDefaults struct {
	Window yamlWindow `yaml:"window"`
	Theme  string     `yaml:"theme"`
	Timer  yamlTimer  `yaml:"timer"`
}

// LoadDefaults decodes the embedded defaults document.
// Missing or invalid values keep the compiled-in defaults.
func LoadDefaults(data []byte) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	if len(data) == 0 {
		return settings, nil
	}

	var fileData yamlDefaults
	if err := yaml.Unmarshal(data, &fileData); err != nil {
		return settings, fmt.Errorf("parse defaults yaml: %w", err)
	}

	applyYamlDefaults(&settings, fileData)
	return settings, nil
}

func applyYamlDefaults(settings *preferences.Settings, fileData yamlDefaults) {
	if fileData.Window.Title != "" {
		settings.Title = fileData.Window.Title
	}
	if fileData.Window.Width > 0 {
		settings.WindowWidth = fileData.Window.Width
	}
	if fileData.Window.Height > 0 {
		settings.WindowHeight = fileData.Window.Height
	}
	if fileData.Window.AlwaysOnTop != nil {
		settings.AlwaysOnTop = *fileData.Window.AlwaysOnTop
	}

	switch theme.Name(fileData.Theme) {
	case theme.NameLight, theme.NameDark:
		settings.Theme = theme.Name(fileData.Theme)
	}

	if fileData.Timer.WorkMinutes > 0 {
		settings.Work = time.Duration(fileData.Timer.WorkMinutes) * time.Minute
	}
	if fileData.Timer.ShortBreakMinutes > 0 {
		settings.ShortBreak = time.Duration(fileData.Timer.ShortBreakMinutes) * time.Minute
	}
	if fileData.Timer.LongBreakMinutes > 0 {
		settings.LongBreak = time.Duration(fileData.Timer.LongBreakMinutes) * time.Minute
	}
	if fileData.Timer.LongBreakEvery > 0 {
		settings.LongBreakEvery = fileData.Timer.LongBreakEvery
	}
}
