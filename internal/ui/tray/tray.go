package tray

import (
	"fmt"

	"waveslogin/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/lang"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnSignOut     func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	signOutItem *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: lang.L("status_idle"),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.signOutItem = fyne.NewMenuItem(lang.L("sign_out"), func() {
		if manager.callbacks.OnSignOut != nil {
			manager.callbacks.OnSignOut()
		}
	})
	manager.signOutItem.Disabled = true

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusLabel
}

// SetSignedIn toggles the sign-out item.
func (manager *Manager) SetSignedIn(signedIn bool) {
	manager.signOutItem.Disabled = !signedIn
	manager.refreshMenu()
}

// HandleEvent mirrors session changes in the tray.
func (manager *Manager) HandleEvent(event session.Event) {
	switch event.Type {
	case session.EventPhaseChange, session.EventOutcome:
		manager.SetStatus(StatusText(event.Phase, event.Outcome))
		manager.SetSignedIn(event.Outcome == session.OutcomeSuccess && event.Phase == session.PhaseStopped)
	}
}

// StatusText returns the translated status for a phase and outcome.
func StatusText(phase session.Phase, outcome session.Outcome) string {
	if phase == session.PhaseStarted {
		return lang.L("status_checking")
	}
	switch outcome {
	case session.OutcomeSuccess:
		return lang.L("status_signed_in")
	case session.OutcomeFailed:
		return lang.L("status_failed")
	default:
		return lang.L("status_idle")
	}
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("%s: %s", lang.L("status"), manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(lang.L("app_title"),
		manager.statusItem,
		fyne.NewMenuItem(lang.L("show_login"), func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem(lang.L("preferences"), func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.signOutItem,
		fyne.NewMenuItem(lang.L("quit"), func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
