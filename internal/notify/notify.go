package notify

import (
	"log"
	"sync"

	"gomodoro/internal/core/pomodoro"
	"gomodoro/internal/i18n"

	"fyne.io/fyne/v2"
)

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(title, body string) error
}

// Sound plays the end-of-phase alert sound.
type Sound interface {
	Play() error
}

// FyneNotifier dispatches through the Fyne application.
type FyneNotifier struct {
	app fyne.App
}

// NewFyneNotifier wraps a Fyne app as a Notifier.
func NewFyneNotifier(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

func (notifier *FyneNotifier) Notify(title, body string) error {
	notifier.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}

// Config controls which alerts the dispatcher issues.
type Config struct {
	NotificationsEnabled bool
	SoundEnabled         bool
}

// Dispatcher turns PhaseComplete events into desktop notifications and
// sounds. Delivery failures are logged and never stop the timer.
type Dispatcher struct {
	mu         sync.Mutex
	notifier   Notifier
	sound      Sound
	translator *i18n.Translator
	config     Config
}

// NewDispatcher creates a dispatcher. sound may be nil.
func NewDispatcher(notifier Notifier, sound Sound, translator *i18n.Translator, config Config) *Dispatcher {
	return &Dispatcher{
		notifier:   notifier,
		sound:      sound,
		translator: translator,
		config:     config,
	}
}

// UpdateConfig replaces alert preferences.
func (dispatcher *Dispatcher) UpdateConfig(config Config) {
	dispatcher.mu.Lock()
	dispatcher.config = config
	dispatcher.mu.Unlock()
}

// UpdateTranslator swaps the message language.
func (dispatcher *Dispatcher) UpdateTranslator(translator *i18n.Translator) {
	dispatcher.mu.Lock()
	dispatcher.translator = translator
	dispatcher.mu.Unlock()
}

// UpdateSound replaces the alert sound. nil disables playback.
func (dispatcher *Dispatcher) UpdateSound(sound Sound) {
	dispatcher.mu.Lock()
	dispatcher.sound = sound
	dispatcher.mu.Unlock()
}

// Listen consumes engine events until the channel closes.
func (dispatcher *Dispatcher) Listen(events <-chan pomodoro.Event) {
	for event := range events {
		if event.Type == pomodoro.EventPhaseComplete {
			dispatcher.dispatch(event)
		}
	}
}

func (dispatcher *Dispatcher) dispatch(event pomodoro.Event) {
	dispatcher.mu.Lock()
	config := dispatcher.config
	sound := dispatcher.sound
	translator := dispatcher.translator
	dispatcher.mu.Unlock()

	title, body := message(translator, event.Phase)

	if config.NotificationsEnabled {
		if err := dispatcher.notifier.Notify(title, body); err != nil {
			log.Printf("notify: send notification: %v", err)
		}
	}
	if config.SoundEnabled && sound != nil {
		if err := sound.Play(); err != nil {
			log.Printf("notify: play sound: %v", err)
		}
	}
}

func message(translator *i18n.Translator, phase pomodoro.Phase) (string, string) {
	switch phase {
	case pomodoro.PhaseShortBreak:
		return translator.T(i18n.KeyBreakComplete), translator.T(i18n.KeyTimeToFocus)
	case pomodoro.PhaseLongBreak:
		return translator.T(i18n.KeyLongBreakComplete), translator.T(i18n.KeyTimeToFocus)
	default:
		return translator.T(i18n.KeyWorkComplete), translator.T(i18n.KeyTimeToRelax)
	}
}
