package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"gomodoro/internal/core/pomodoro"
	"gomodoro/internal/i18n"
	"gomodoro/internal/notify"
	"gomodoro/internal/platform"
	"gomodoro/internal/session"
	"gomodoro/internal/storage"
	"gomodoro/internal/ui/flash"
	"gomodoro/internal/ui/preferences"
	"gomodoro/internal/ui/timerface"
	"gomodoro/internal/ui/tray"
	"gomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "Gomodoro"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.gomodoro.app")
	fyneApp.SetIcon(resources.MustIcon("logo.svg"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Gomodoro is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	engineConfig := settings.EngineConfig()
	for _, correction := range engineConfig.Normalize() {
		log.Printf("settings: %s", correction)
	}

	translator := i18n.New(settings.Language)

	engine := pomodoro.New(engineConfig, pomodoro.Options{TickInterval: time.Second})
	defer engine.Stop()

	dispatcher := notify.NewDispatcher(notify.NewFyneNotifier(fyneApp), buildSound(settings), translator, settings.NotifyConfig())
	go dispatcher.Listen(engine.Subscribe(8))

	history := openHistory(appName)
	if history != nil {
		defer history.Close()
		recorder := session.NewRecorder(history)
		go recorder.Listen(engine.Subscribe(8))
		logDayStats(history)
	}

	face := timerface.New(fyneApp, translator)

	activeIcon := resources.MustIcon("logo.svg")
	pausedIcon := resources.MustIcon("logo-paused.svg")

	platformService := platform.NewService()
	applyAutostart(platformService, settings.AutostartLogin)

	var trayManager *tray.Manager
	applySettings := func(updated preferences.Settings, persist bool) {
		previousLanguage := settings.Language
		settings = updated

		if persist {
			if err := storage.SaveSettings(appName, settings); err != nil {
				log.Printf("settings: save: %v", err)
			}
		}

		config := settings.EngineConfig()
		for _, correction := range config.Normalize() {
			log.Printf("settings: %s", correction)
		}
		engine.UpdateConfig(config)
		dispatcher.UpdateConfig(settings.NotifyConfig())
		dispatcher.UpdateSound(buildSound(settings))
		applyAutostart(platformService, settings.AutostartLogin)

		if settings.Language != previousLanguage {
			translator = i18n.New(settings.Language)
			dispatcher.UpdateTranslator(translator)
			face.Relabel(translator)
			trayManager.SetTranslator(translator)
		}

		status := engine.Snapshot()
		face.Apply(status)
		trayManager.Apply(status)
	}

	prefsWindow := preferences.New(fyneApp, translator, settings, func(updated preferences.Settings) {
		applySettings(updated, true)
	})
	face.SetHandlers(timerface.Handlers{
		OnToggle:      engine.Toggle,
		OnReset:       engine.Reset,
		OnSkip:        engine.Skip,
		OnPreferences: prefsWindow.Show,
	})
	trayManager = tray.New(desktopApp, translator, tray.Callbacks{
		OnShowTimer:   face.Show,
		OnToggle:      engine.Toggle,
		OnSkip:        engine.Skip,
		OnReset:       engine.Reset,
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			engine.Stop()
			fyneApp.Quit()
		},
	})
	trayManager.SetIcon(pausedIcon)

	flasher := flash.New(flash.DefaultConfig(), func(icon fyne.Resource) {
		trayManager.SetIcon(icon)
	})

	// The watcher fires on its debounce goroutine; settings and
	// translator are only ever touched on the Fyne main goroutine.
	watcher := watchSettings(appName, func(updated preferences.Settings) {
		fyne.Do(func() {
			applySettings(updated, false)
			prefsWindow.UpdateSettings(updated)
		})
	})
	if watcher != nil {
		defer watcher.Close()
	}

	go routeEvents(engine, engine.Subscribe(16), face, trayManager, flasher, activeIcon, pausedIcon)

	engine.Run()
	face.Apply(engine.Snapshot())
	trayManager.Apply(engine.Snapshot())
	face.Show()
	fyneApp.Run()
}

// routeEvents fans engine events out to the window, the tray, and the
// attention flash. The flash runs while a completed phase waits for the
// user and stops on the next state change.
func routeEvents(engine *pomodoro.Engine, events <-chan pomodoro.Event, face *timerface.Window, trayManager *tray.Manager, flasher *flash.Flasher, activeIcon, pausedIcon fyne.Resource) {
	awaitingStart := false
	for event := range events {
		status := engine.Snapshot()
		face.Apply(status)
		trayManager.Apply(status)

		switch event.Type {
		case pomodoro.EventPhaseComplete:
			if status.State == pomodoro.StateIdle {
				awaitingStart = true
				flasher.Start(context.Background(), activeIcon, pausedIcon)
			}
		case pomodoro.EventStateChange:
			switch status.State {
			case pomodoro.StateRunning:
				awaitingStart = false
				flasher.Stop(activeIcon)
			case pomodoro.StatePaused:
				awaitingStart = false
				flasher.Stop(pausedIcon)
			case pomodoro.StateIdle:
				// The idle announcement right after a completed phase
				// keeps the flash; any other idle transition ends it.
				if !awaitingStart {
					flasher.Stop(pausedIcon)
				}
				awaitingStart = false
			}
		}
	}
}

// buildSound loads the configured alert sound. Returns nil when sound
// is disabled or the file cannot be decoded.
func buildSound(settings preferences.Settings) notify.Sound {
	if !settings.SoundEnabled || settings.SoundFile == "" {
		return nil
	}
	player, err := notify.NewSoundPlayer(settings.SoundFile)
	if err != nil {
		log.Printf("sound: %v", err)
		return nil
	}
	return player
}

// openHistory opens the session history database next to the settings
// file. History is optional; failure only disables statistics.
func openHistory(appName string) *storage.HistoryStore {
	settingsPath, err := storage.SettingsPath(appName)
	if err != nil {
		log.Printf("history: resolve config dir: %v", err)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0o755); err != nil {
		log.Printf("history: create config dir: %v", err)
		return nil
	}
	store, err := storage.OpenHistory(filepath.Join(filepath.Dir(settingsPath), "history.db"))
	if err != nil {
		log.Printf("history: %v", err)
		return nil
	}
	return store
}

func logDayStats(history *storage.HistoryStore) {
	stats, err := history.DayStats(time.Now())
	if err != nil {
		log.Printf("history: day stats: %v", err)
		return
	}
	log.Printf("today: %d focus sessions, %d breaks, %s focused",
		stats.CompletedWork, stats.CompletedBreaks, stats.FocusTime)
}

// watchSettings reloads preferences when the settings file changes on
// disk, so edits made outside the app apply without a restart.
func watchSettings(appName string, onChange func(preferences.Settings)) *storage.SettingsWatcher {
	settingsPath, err := storage.SettingsPath(appName)
	if err != nil {
		log.Printf("settings watch: %v", err)
		return nil
	}
	watcher, err := storage.WatchSettings(settingsPath, func() {
		updated, err := storage.LoadSettingsFile(settingsPath)
		if err != nil {
			log.Printf("settings reload: %v", err)
			return
		}
		onChange(updated)
	})
	if err != nil {
		log.Printf("settings watch: %v", err)
		return nil
	}
	return watcher
}

func applyAutostart(service platform.Service, enabled bool) {
	if enabled {
		execPath, err := os.Executable()
		if err != nil {
			log.Printf("autostart: resolve executable: %v", err)
			return
		}
		if err := service.EnableAutostart(appName, execPath); err != nil {
			log.Printf("autostart: enable: %v", err)
		}
		return
	}
	if err := service.DisableAutostart(appName); err != nil {
		log.Printf("autostart: disable: %v", err)
	}
}
