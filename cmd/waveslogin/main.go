package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"waveslogin/internal/core/session"
	"waveslogin/internal/platform"
	"waveslogin/internal/storage"
	"waveslogin/internal/ui/animation"
	"waveslogin/internal/ui/login"
	"waveslogin/internal/ui/preferences"
	"waveslogin/internal/ui/tray"
	"waveslogin/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName = "WavesLogin"
	appID   = "com.waveslogin.app"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	if err := resources.LoadTranslations(); err != nil {
		logger.Warn("load translations", "error", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon("waves.svg"))

	settings := preferences.DefaultSettings()
	store, err := storage.DefaultStore(appName)
	if err != nil {
		logger.Warn("settings store unavailable", "error", err)
	} else if settings, err = store.Load(); err != nil {
		logger.Warn("load settings", "path", store.Path(), "error", err)
	}

	machine := session.New(settings.LoginConfig())
	machine.SetLogger(logger.With("component", "session"))
	defer machine.Close()

	loginWindow := login.New(fyneApp, machine, login.Config{Fullscreen: settings.Fullscreen})
	loginWindow.SetOnSignedOut(func() {
		logger.Info("signed out")
		loginWindow.Show()
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		machine.UpdateConfig(settings.LoginConfig())
		loginWindow.UpdateConfig(login.Config{Fullscreen: settings.Fullscreen})
		if store == nil {
			return
		}
		if err := store.Save(settings); err != nil {
			logger.Error("save settings", "path", store.Path(), "error", err)
		}
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:        loginWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnSignOut: func() {
				loginWindow.SignOut()
			},
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())

		events := machine.Subscribe(16)
		go func() {
			for event := range events {
				if event.Type == session.EventProgress {
					continue
				}
				fyne.Do(func() {
					trayManager.HandleEvent(event)
				})
			}
		}()
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	driver := animation.NewDriver(animation.DefaultFrameInterval)
	driver.Start(context.Background(), func(now time.Time) {
		machine.Tick(now)
		fyne.Do(func() {
			loginWindow.Render(now)
		})
	})
	defer driver.Stop()

	loginWindow.Window().SetMaster()
	loginWindow.Render(time.Now())
	loginWindow.Show()
	fyneApp.Run()
}
