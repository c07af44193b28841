package preferences

import (
	"time"

	"gomodoro/internal/core/model"
	"gomodoro/internal/i18n"
	"gomodoro/internal/notify"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration         time.Duration
	ShortBreak           time.Duration
	LongBreak            time.Duration
	SessionsPerLongBreak int
	AutoStartBreaks      bool
	AutoStartWork        bool

	NotificationsEnabled bool
	SoundEnabled         bool
	SoundFile            string

	Language       string
	AutostartLogin bool
}

// DefaultSettings returns the default Gomodoro preferences.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:         25 * time.Minute,
		ShortBreak:           5 * time.Minute,
		LongBreak:            15 * time.Minute,
		SessionsPerLongBreak: 4,
		NotificationsEnabled: true,
		Language:             i18n.LanguageSystem,
	}
}

// EngineConfig converts settings to the engine configuration.
func (settings Settings) EngineConfig() model.Config {
	return model.Config{
		Work:                 model.PhaseConfig{Duration: settings.WorkDuration},
		ShortBreak:           model.PhaseConfig{Duration: settings.ShortBreak},
		LongBreak:            model.PhaseConfig{Duration: settings.LongBreak},
		SessionsPerLongBreak: settings.SessionsPerLongBreak,
		AutoStartBreaks:      settings.AutoStartBreaks,
		AutoStartWork:        settings.AutoStartWork,
	}
}

// NotifyConfig converts settings to the dispatcher configuration.
func (settings Settings) NotifyConfig() notify.Config {
	return notify.Config{
		NotificationsEnabled: settings.NotificationsEnabled,
		SoundEnabled:         settings.SoundEnabled,
	}
}
