package tray

import (
	"fmt"

	"gomodoro/internal/core/pomodoro"
	"gomodoro/internal/core/timefmt"
	"gomodoro/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnToggle      func()
	OnSkip        func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles the system tray menu and icon.
type Manager struct {
	app        desktop.App
	translator *i18n.Translator
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	skipItem   *fyne.MenuItem
	resetItem  *fyne.MenuItem
	callbacks  Callbacks
	status     pomodoro.Status
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, translator *i18n.Translator, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:        app,
		translator: translator,
		callbacks:  callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("--:--", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(translator.T(i18n.KeyStart), func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.skipItem = fyne.NewMenuItem(translator.T(i18n.KeySkip), func() {
		if manager.callbacks.OnSkip != nil {
			manager.callbacks.OnSkip()
		}
	})
	manager.resetItem = fyne.NewMenuItem(translator.T(i18n.KeyReset), func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetTranslator swaps menu captions after a language change. Safe to
// call from any goroutine.
func (manager *Manager) SetTranslator(translator *i18n.Translator) {
	fyne.Do(func() {
		manager.translator = translator
		manager.toggleItem.Label = manager.toggleCaption()
		manager.skipItem.Label = translator.T(i18n.KeySkip)
		manager.resetItem.Label = translator.T(i18n.KeyReset)
		manager.refreshMenu()
	})
}

// SetIcon updates the tray icon. Safe to call from any goroutine.
func (manager *Manager) SetIcon(resource fyne.Resource) {
	fyne.Do(func() {
		manager.app.SetSystemTrayIcon(resource)
	})
}

// Apply renders an engine snapshot into the menu.
func (manager *Manager) Apply(status pomodoro.Status) {
	fyne.Do(func() {
		manager.status = status
		manager.statusItem.Label = manager.statusCaption()
		manager.toggleItem.Label = manager.toggleCaption()
		manager.refreshMenu()
	})
}

func (manager *Manager) statusCaption() string {
	label := manager.translator.T(i18n.KeyPhaseWork)
	switch manager.status.Phase {
	case pomodoro.PhaseShortBreak:
		label = manager.translator.T(i18n.KeyPhaseShortBreak)
	case pomodoro.PhaseLongBreak:
		label = manager.translator.T(i18n.KeyPhaseLongBreak)
	}
	return fmt.Sprintf("%s %s", label, timefmt.Clock(manager.status.Remaining))
}

func (manager *Manager) toggleCaption() string {
	switch manager.status.State {
	case pomodoro.StateRunning:
		return manager.translator.T(i18n.KeyPause)
	case pomodoro.StatePaused:
		return manager.translator.T(i18n.KeyResume)
	default:
		return manager.translator.T(i18n.KeyStart)
	}
}

// refreshMenu rebuilds the menu. Fyne tray menus do not refresh item
// labels in place on every platform, so the whole menu is reset.
func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Gomodoro",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(manager.translator.T(i18n.KeyAppTitle), func() {
			if manager.callbacks.OnShowTimer != nil {
				manager.callbacks.OnShowTimer()
			}
		}),
		manager.toggleItem,
		manager.skipItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(manager.translator.T(i18n.KeyPreferences), func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem(manager.translator.T(i18n.KeyQuit), func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
