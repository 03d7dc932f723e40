//go:build windows

package platform

import (
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

var (
	user32DLL        = syscall.NewLazyDLL("user32.dll")
	procSetWindowPos = user32DLL.NewProc("SetWindowPos")
)

// hwndTopmost is HWND_TOPMOST, (HWND)-1.
var hwndTopmost = ^uintptr(0)

func setAlwaysOnTop(window fyne.Window) bool {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return false
	}

	applied := false
	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}

		result, _, _ := procSetWindowPos.Call(hwnd, hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
		applied = result != 0
	})
	return applied
}
