package tray

import (
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	mu    sync.Mutex
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.menus = append(host.menus, menu)
}

func (host *fakeHost) SetSystemTrayIcon(icon fyne.Resource) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.icons = append(host.icons, icon)
}

func (host *fakeHost) lastMenu() *fyne.Menu {
	host.mu.Lock()
	defer host.mu.Unlock()
	if len(host.menus) == 0 {
		return nil
	}
	return host.menus[len(host.menus)-1]
}

type fakeNative struct {
	mu       sync.Mutex
	tooltips []string
	titles   []string
}

func (native *fakeNative) SetTooltip(text string) {
	native.mu.Lock()
	defer native.mu.Unlock()
	native.tooltips = append(native.tooltips, text)
}

func (native *fakeNative) SetTitle(text string) {
	native.mu.Lock()
	defer native.mu.Unlock()
	native.titles = append(native.titles, text)
}

func (native *fakeNative) lastTooltip() string {
	native.mu.Lock()
	defer native.mu.Unlock()
	if len(native.tooltips) == 0 {
		return ""
	}
	return native.tooltips[len(native.tooltips)-1]
}

func newTestManager(t *testing.T, callbacks Callbacks) (*Manager, *fakeHost, *fakeNative) {
	t.Helper()

	test.NewApp()
	host := &fakeHost{}
	native := &fakeNative{}
	icon := fyne.NewStaticResource("icon.svg", []byte("<svg/>"))
	manager, err := New(host, icon, callbacks)
	require.NoError(t, err)
	manager.SetNative(native)
	return manager, host, native
}

func TestNew_NilHostIsUnsupported(t *testing.T) {
	manager, err := New(nil, nil, Callbacks{})
	assert.Nil(t, manager)
	assert.ErrorIs(t, err, ErrTrayUnsupported)
}

func TestManager_StartInstallsIconAndMenu(t *testing.T) {
	manager, host, _ := newTestManager(t, Callbacks{})

	assert.False(t, manager.Active())
	manager.Start()
	manager.Start()

	assert.True(t, manager.Active())
	require.Len(t, host.icons, 1)
	require.Len(t, host.menus, 1)

	menu := host.lastMenu()
	require.Len(t, menu.Items, 3)
	assert.Equal(t, "Pomodoro — 00:00", menu.Items[0].Label)
	assert.True(t, menu.Items[0].Disabled)
	assert.Equal(t, "Show", menu.Items[1].Label)
	assert.Equal(t, "Quit", menu.Items[2].Label)
}

func TestManager_MenuActionsInvokeCallbacks(t *testing.T) {
	shown, quit := 0, 0
	manager, host, _ := newTestManager(t, Callbacks{
		OnShow: func() { shown++ },
		OnQuit: func() { quit++ },
	})

	manager.Start()
	menu := host.lastMenu()
	menu.Items[1].Action()
	menu.Items[2].Action()

	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, quit)
}

func TestManager_PublishWhileActive(t *testing.T) {
	manager, host, native := newTestManager(t, Callbacks{})
	manager.Start()

	assert.True(t, manager.Publish("02:05"))

	assert.Equal(t, "Pomodoro — 02:05", native.lastTooltip())
	assert.Equal(t, []string{"Pomodoro — 02:05"}, native.titles)
	assert.Equal(t, "Pomodoro — 02:05", host.lastMenu().Items[0].Label)
}

func TestManager_PublishInactiveIsSkipped(t *testing.T) {
	manager, host, native := newTestManager(t, Callbacks{})

	assert.False(t, manager.Publish("02:05"))

	assert.Empty(t, native.tooltips)
	assert.Empty(t, host.menus)
}

func TestManager_StopClearsText(t *testing.T) {
	manager, host, native := newTestManager(t, Callbacks{})
	manager.Start()
	manager.Publish("10:00")

	manager.Stop()
	manager.Stop()

	assert.False(t, manager.Active())
	assert.Equal(t, "", native.lastTooltip())
	assert.Empty(t, host.lastMenu().Items)
	assert.False(t, manager.Publish("09:59"))
}
