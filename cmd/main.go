package main

import (
	"log"
	"time"

	"pomodoro/internal/config"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/lifecycle"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const trayInterval = time.Second

func main() {
	settings, err := config.LoadDefaults(resources.Defaults())
	if err != nil {
		log.Printf("load defaults: %v", err)
	}

	fyneApp := app.NewWithID("com.pomodoro.app")
	icon := resources.MustIcon("tomato.svg")
	fyneApp.SetIcon(icon)

	keeper := timekeeper.New(settings.TimeKeeperConfig(), timekeeper.Config{TickInterval: time.Second})
	timerWindow := window.New(fyneApp, settings, window.Callbacks{})

	var shell *lifecycle.Lifecycle
	trayManager, err := newTray(fyneApp, icon, tray.Callbacks{
		OnShow: func() {
			shell.ShowWindow()
		},
		OnQuit: func() {
			shell.Quit()
		},
	})
	if err != nil {
		log.Printf("tray: %v", err)
		shell = lifecycle.New(timerWindow, nil, nil, keeper, fyneApp.Quit)
	} else {
		mirror := tray.NewMirror(keeper, trayManager, trayInterval)
		shell = lifecycle.New(timerWindow, trayManager, mirror, keeper, fyneApp.Quit)
	}

	timerWindow.SetCallbacks(window.Callbacks{
		OnStart: keeper.Start,
		OnReset: keeper.Reset,
		OnHide:  shell.HideToTray,
		OnQuit:  shell.Quit,
	})

	go timerWindow.Follow(keeper.Subscribe(8))

	timerWindow.Show()
	fyneApp.Run()
	shell.Quit()
}

func newTray(fyneApp fyne.App, icon fyne.Resource, callbacks tray.Callbacks) (*tray.Manager, error) {
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return nil, tray.ErrTrayUnsupported
	}
	return tray.New(desktopApp, icon, callbacks)
}
