package platform

import "fyne.io/fyne/v2"

// SetAlwaysOnTop asks the window manager to keep window above other windows.
// It reports false when the platform offers no way to do so.
func SetAlwaysOnTop(window fyne.Window) bool {
	if window == nil {
		return false
	}
	return setAlwaysOnTop(window)
}
