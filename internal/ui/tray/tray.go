package tray

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/systray"
)

const menuTitle = "Pomodoro"

// ErrTrayUnsupported indicates the running app cannot host a tray icon.
var ErrTrayUnsupported = errors.New("system tray unsupported")

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Native publishes text next to the tray icon.
type Native interface {
	SetTooltip(text string)
	SetTitle(text string)
}

type systrayNative struct{}

func (systrayNative) SetTooltip(text string) {
	systray.SetTooltip(text)
}

func (systrayNative) SetTitle(text string) {
	systray.SetTitle(text)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow func()
	OnQuit func()
}

// Manager handles system tray state.
type Manager struct {
	mu         sync.Mutex
	host       Host
	native     Native
	icon       fyne.Resource
	statusItem *fyne.MenuItem
	callbacks  Callbacks
	active     bool
}

// New creates a tray manager. The tray stays inactive until Start.
func New(host Host, icon fyne.Resource, callbacks Callbacks) (*Manager, error) {
	if host == nil {
		return nil, ErrTrayUnsupported
	}

	manager := &Manager{
		host:      host,
		native:    systrayNative{},
		icon:      icon,
		callbacks: callbacks,
	}
	manager.statusItem = fyne.NewMenuItem(StatusText("00:00"), nil)
	manager.statusItem.Disabled = true

	return manager, nil
}

// SetNative replaces the platform text publisher.
func (manager *Manager) SetNative(native Native) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.native = native
}

// Start shows the tray icon with its menu.
func (manager *Manager) Start() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if manager.active {
		return
	}
	manager.active = true
	if manager.icon != nil {
		manager.host.SetSystemTrayIcon(manager.icon)
	}
	manager.host.SetSystemTrayMenu(manager.menu())
}

// Stop withdraws the tray menu and clears the mirrored text.
func (manager *Manager) Stop() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if !manager.active {
		return
	}
	manager.active = false
	manager.statusItem.Label = StatusText("00:00")
	manager.native.SetTooltip("")
	manager.native.SetTitle("")
	manager.host.SetSystemTrayMenu(fyne.NewMenu(menuTitle))
}

// Active reports whether the tray is currently shown.
func (manager *Manager) Active() bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.active
}

// Publish mirrors clock into the tooltip, title and status item.
// It returns false when the tray is not active.
func (manager *Manager) Publish(clock string) bool {
	manager.mu.Lock()
	if !manager.active {
		manager.mu.Unlock()
		return false
	}
	text := StatusText(clock)
	manager.native.SetTooltip(text)
	manager.native.SetTitle(text)
	manager.statusItem.Label = text
	menu := manager.menu()
	manager.mu.Unlock()

	fyne.Do(func() {
		manager.mu.Lock()
		defer manager.mu.Unlock()
		if manager.active {
			manager.host.SetSystemTrayMenu(menu)
		}
	})
	return true
}

// StatusText decorates a clock for the tray.
func StatusText(clock string) string {
	return menuTitle + " — " + clock
}

func (manager *Manager) menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}
