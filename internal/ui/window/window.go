package window

import (
	"sync"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines the button and close handlers.
type Callbacks struct {
	OnStart func()
	OnReset func()
	OnHide  func()
	OnQuit  func()
}

// Window manages the timer UI.
type Window struct {
	app          fyne.App
	window       fyne.Window
	settings     preferences.Settings
	themeName    theme.Name
	background   *canvas.Rectangle
	titleLabel   *canvas.Text
	timerLabel   *canvas.Text
	marksLabel   *canvas.Text
	startButton  *widget.Button
	resetButton  *widget.Button
	themeButton  *widget.Button
	hideButton   *widget.Button
	callbacks    Callbacks
	visibleMu    sync.Mutex
	visible      bool
	topmostAsked bool
}

// New creates the timer window. It is not shown until Show.
func New(app fyne.App, settings preferences.Settings, callbacks Callbacks) *Window {
	window := app.NewWindow(settings.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetFixedSize(false)

	background := canvas.NewRectangle(theme.Light.Background)

	titleLabel := canvas.NewText(timekeeper.StateIdle.Label(), theme.Light.Highlight)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 20

	timerLabel := canvas.NewText(timekeeper.FormatClock(0), theme.Light.Foreground)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 36

	marksLabel := canvas.NewText("", theme.Light.Highlight)
	marksLabel.Alignment = fyne.TextAlignCenter
	marksLabel.TextSize = 14

	timerWindow := &Window{
		app:        app,
		window:     window,
		settings:   settings,
		background: background,
		titleLabel: titleLabel,
		timerLabel: timerLabel,
		marksLabel: marksLabel,
		callbacks:  callbacks,
	}

	timerWindow.startButton = widget.NewButton("Start", func() {
		if timerWindow.callbacks.OnStart != nil {
			timerWindow.callbacks.OnStart()
		}
	})
	timerWindow.resetButton = widget.NewButton("Reset", func() {
		if timerWindow.callbacks.OnReset != nil {
			timerWindow.callbacks.OnReset()
		}
	})
	timerWindow.themeButton = widget.NewButton("Theme", timerWindow.ToggleTheme)
	timerWindow.hideButton = widget.NewButton("Hide", func() {
		if timerWindow.callbacks.OnHide != nil {
			timerWindow.callbacks.OnHide()
		}
	})

	buttons := container.NewGridWithColumns(2,
		timerWindow.startButton, timerWindow.resetButton,
		timerWindow.themeButton, timerWindow.hideButton,
	)
	content := container.NewVBox(
		container.NewCenter(titleLabel),
		container.NewCenter(timerLabel),
		container.NewCenter(marksLabel),
		container.NewCenter(buttons),
	)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(settings.WindowWidth, settings.WindowHeight))
	window.SetCloseIntercept(func() {
		if timerWindow.callbacks.OnQuit != nil {
			timerWindow.callbacks.OnQuit()
		}
	})

	timerWindow.applyTheme(settings.Theme)
	return timerWindow
}

// SetCallbacks replaces the button and close handlers.
func (timerWindow *Window) SetCallbacks(callbacks Callbacks) {
	timerWindow.callbacks = callbacks
}

// Show displays the window and requests the always-on-top hint.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
	timerWindow.setVisible(true)

	if timerWindow.settings.AlwaysOnTop && !timerWindow.topmostAsked {
		timerWindow.topmostAsked = platform.SetAlwaysOnTop(timerWindow.window)
	}
}

// Hide withdraws the window without quitting.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
	timerWindow.setVisible(false)
}

// Visible reports whether the window is shown.
func (timerWindow *Window) Visible() bool {
	timerWindow.visibleMu.Lock()
	defer timerWindow.visibleMu.Unlock()
	return timerWindow.visible
}

// Render updates title, clock and marks from snapshot. Call on the UI goroutine.
func (timerWindow *Window) Render(snapshot timekeeper.Snapshot) {
	timerWindow.titleLabel.Text = snapshot.Label()
	timerWindow.titleLabel.Refresh()
	timerWindow.timerLabel.Text = snapshot.Clock()
	timerWindow.timerLabel.Refresh()
	timerWindow.marksLabel.Text = snapshot.Marks()
	timerWindow.marksLabel.Refresh()
}

// Follow renders every event until the channel is closed.
func (timerWindow *Window) Follow(events <-chan timekeeper.Event) {
	for event := range events {
		snapshot := event.Snapshot
		fyne.Do(func() {
			timerWindow.Render(snapshot)
		})
	}
}

// ToggleTheme swaps between the light and dark palettes.
func (timerWindow *Window) ToggleTheme() {
	timerWindow.applyTheme(theme.Toggle(timerWindow.themeName))
}

// ThemeName returns the active palette name.
func (timerWindow *Window) ThemeName() theme.Name {
	return timerWindow.themeName
}

func (timerWindow *Window) applyTheme(name theme.Name) {
	if name != theme.NameDark {
		name = theme.NameLight
	}
	palette := theme.PaletteFor(name)
	timerWindow.themeName = name

	timerWindow.app.Settings().SetTheme(theme.New(palette))

	timerWindow.background.FillColor = palette.Background
	canvas.Refresh(timerWindow.background)
	timerWindow.titleLabel.Color = palette.Highlight
	timerWindow.titleLabel.Refresh()
	timerWindow.timerLabel.Color = palette.Foreground
	timerWindow.timerLabel.Refresh()
	timerWindow.marksLabel.Color = palette.Highlight
	timerWindow.marksLabel.Refresh()
}

func (timerWindow *Window) setVisible(visible bool) {
	timerWindow.visibleMu.Lock()
	defer timerWindow.visibleMu.Unlock()
	timerWindow.visible = visible
}
