//go:build !windows

package platform

import "fyne.io/fyne/v2"

// fyne exposes no stacking hint for X11, Wayland or Cocoa windows.
func setAlwaysOnTop(fyne.Window) bool {
	return false
}
