// Package lifecycle switches the app between its window and its tray icon.
// Exactly one of them is presented at any time.
package lifecycle

import (
	"log"
	"sync"
)

// View is the main window.
type View interface {
	Show()
	Hide()
}

// Tray is the system tray presence.
type Tray interface {
	Start()
	Stop()
}

// Mirror republishes the timer into the tray while it runs.
type Mirror interface {
	Start()
	Stop()
}

// Stopper is anything that must be stopped before exit.
type Stopper interface {
	Stop()
}

// Lifecycle coordinates window visibility, tray and shutdown.
type Lifecycle struct {
	mu       sync.Mutex
	view     View
	tray     Tray
	mirror   Mirror
	keeper   Stopper
	quit     func()
	inTray   bool
	quitting bool
	warned   bool
}

// New creates a lifecycle with the window visible. tray and mirror may be nil
// when the platform has no tray; hiding is then disabled.
func New(view View, tray Tray, mirror Mirror, keeper Stopper, quit func()) *Lifecycle {
	return &Lifecycle{
		view:   view,
		tray:   tray,
		mirror: mirror,
		keeper: keeper,
		quit:   quit,
	}
}

// TrayAvailable reports whether HideToTray can do anything.
func (lifecycle *Lifecycle) TrayAvailable() bool {
	return lifecycle.tray != nil && lifecycle.mirror != nil
}

// InTray reports whether the tray icon, not the window, is presented.
func (lifecycle *Lifecycle) InTray() bool {
	lifecycle.mu.Lock()
	defer lifecycle.mu.Unlock()
	return lifecycle.inTray
}

// HideToTray hides the window and starts the tray and its mirror.
func (lifecycle *Lifecycle) HideToTray() {
	lifecycle.mu.Lock()
	if lifecycle.quitting || lifecycle.inTray {
		lifecycle.mu.Unlock()
		return
	}
	if !lifecycle.TrayAvailable() {
		warn := !lifecycle.warned
		lifecycle.warned = true
		lifecycle.mu.Unlock()
		if warn {
			log.Printf("hide to tray: system tray unavailable, keeping window")
		}
		return
	}
	lifecycle.inTray = true
	lifecycle.mu.Unlock()

	lifecycle.view.Hide()
	lifecycle.tray.Start()
	lifecycle.mirror.Start()
}

// ShowWindow restores the window and withdraws the tray.
func (lifecycle *Lifecycle) ShowWindow() {
	lifecycle.mu.Lock()
	if lifecycle.quitting || !lifecycle.inTray {
		lifecycle.mu.Unlock()
		return
	}
	lifecycle.inTray = false
	lifecycle.mu.Unlock()

	lifecycle.view.Show()
	lifecycle.mirror.Stop()
	lifecycle.tray.Stop()
}

// Quit stops the mirror, the tray and the timer, then ends the app.
func (lifecycle *Lifecycle) Quit() {
	lifecycle.mu.Lock()
	if lifecycle.quitting {
		lifecycle.mu.Unlock()
		return
	}
	lifecycle.quitting = true
	lifecycle.inTray = false
	lifecycle.mu.Unlock()

	if lifecycle.mirror != nil {
		lifecycle.mirror.Stop()
	}
	if lifecycle.tray != nil {
		lifecycle.tray.Stop()
	}
	if lifecycle.keeper != nil {
		lifecycle.keeper.Stop()
	}
	if lifecycle.quit != nil {
		lifecycle.quit()
	}
}
