package window

import (
	"testing"
	"time"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T, callbacks Callbacks) (*Window, fyne.App) {
	t.Helper()

	app := test.NewApp()
	timerWindow := New(app, preferences.DefaultSettings(), callbacks)
	t.Cleanup(timerWindow.window.Close)
	return timerWindow, app
}

func TestNew_InitialDisplay(t *testing.T) {
	timerWindow, _ := newTestWindow(t, Callbacks{})

	assert.Equal(t, "Pomodoro", timerWindow.window.Title())
	assert.Equal(t, "Timer", timerWindow.titleLabel.Text)
	assert.Equal(t, "00:00", timerWindow.timerLabel.Text)
	assert.Equal(t, "", timerWindow.marksLabel.Text)
	assert.Equal(t, theme.NameLight, timerWindow.ThemeName())
	assert.False(t, timerWindow.Visible())
}

func TestButtons_InvokeCallbacks(t *testing.T) {
	var calls []string
	timerWindow, _ := newTestWindow(t, Callbacks{
		OnStart: func() { calls = append(calls, "start") },
		OnReset: func() { calls = append(calls, "reset") },
		OnHide:  func() { calls = append(calls, "hide") },
	})

	test.Tap(timerWindow.startButton)
	test.Tap(timerWindow.resetButton)
	test.Tap(timerWindow.hideButton)

	assert.Equal(t, []string{"start", "reset", "hide"}, calls)
}

func TestSetCallbacks_ReplacesHandlers(t *testing.T) {
	timerWindow, _ := newTestWindow(t, Callbacks{})
	test.Tap(timerWindow.startButton)

	started := 0
	timerWindow.SetCallbacks(Callbacks{OnStart: func() { started++ }})
	test.Tap(timerWindow.startButton)

	assert.Equal(t, 1, started)
}

func TestRender_ShowsSnapshot(t *testing.T) {
	timerWindow, _ := newTestWindow(t, Callbacks{})

	timerWindow.Render(timekeeper.Snapshot{
		State:            timekeeper.StateShortBreak,
		Repetitions:      4,
		RemainingSeconds: 65,
	})

	assert.Equal(t, "Short break", timerWindow.titleLabel.Text)
	assert.Equal(t, "01:05", timerWindow.timerLabel.Text)
	assert.Equal(t, "✔✔", timerWindow.marksLabel.Text)

	timerWindow.Render(timekeeper.Snapshot{State: timekeeper.StateIdle})

	assert.Equal(t, "Timer", timerWindow.titleLabel.Text)
	assert.Equal(t, "00:00", timerWindow.timerLabel.Text)
	assert.Equal(t, "", timerWindow.marksLabel.Text)
}

func TestFollow_RendersEventsUntilClosed(t *testing.T) {
	timerWindow, _ := newTestWindow(t, Callbacks{})
	events := make(chan timekeeper.Event, 2)
	events <- timekeeper.Event{Type: timekeeper.EventPhaseChange, Snapshot: timekeeper.Snapshot{
		State: timekeeper.StateWork, Repetitions: 1, RemainingSeconds: 1500,
	}}
	events <- timekeeper.Event{Type: timekeeper.EventProgress, Snapshot: timekeeper.Snapshot{
		State: timekeeper.StateWork, Repetitions: 1, RemainingSeconds: 1499,
	}}
	close(events)

	done := make(chan struct{})
	go func() {
		timerWindow.Follow(events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Follow did not return after channel close")
	}
	require.Eventually(t, func() bool {
		return timerWindow.timerLabel.Text == "24:59"
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Work!", timerWindow.titleLabel.Text)
}

func TestToggleTheme_SwapsPaletteOnThemedWidgets(t *testing.T) {
	timerWindow, app := newTestWindow(t, Callbacks{})

	test.Tap(timerWindow.themeButton)

	assert.Equal(t, theme.NameDark, timerWindow.ThemeName())
	assert.Equal(t, theme.Dark.Background, timerWindow.background.FillColor)
	assert.Equal(t, theme.Dark.Highlight, timerWindow.titleLabel.Color)
	assert.Equal(t, theme.Dark.Foreground, timerWindow.timerLabel.Color)
	assert.Equal(t, theme.Dark.Highlight, timerWindow.marksLabel.Color)
	appTheme, ok := app.Settings().Theme().(*theme.Theme)
	require.True(t, ok)
	assert.Equal(t, theme.Dark, appTheme.Palette())
}

func TestToggleTheme_TwiceRestoresPalette(t *testing.T) {
	timerWindow, app := newTestWindow(t, Callbacks{})

	timerWindow.ToggleTheme()
	timerWindow.ToggleTheme()

	assert.Equal(t, theme.NameLight, timerWindow.ThemeName())
	assert.Equal(t, theme.Light.Background, timerWindow.background.FillColor)
	assert.Equal(t, theme.Light.Highlight, timerWindow.titleLabel.Color)
	assert.Equal(t, theme.Light.Foreground, timerWindow.timerLabel.Color)
	assert.Equal(t, theme.Light.Highlight, timerWindow.marksLabel.Color)
	appTheme, ok := app.Settings().Theme().(*theme.Theme)
	require.True(t, ok)
	assert.Equal(t, theme.Light, appTheme.Palette())
}

func TestShowHide_TracksVisibility(t *testing.T) {
	timerWindow, _ := newTestWindow(t, Callbacks{})

	timerWindow.Show()
	assert.True(t, timerWindow.Visible())

	timerWindow.Hide()
	assert.False(t, timerWindow.Visible())
}
