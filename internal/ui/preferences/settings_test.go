package preferences

import (
	"testing"
	"time"

	"gomodoro/internal/i18n"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.WorkDuration != 25*time.Minute {
		t.Fatalf("work duration = %v, want 25m", settings.WorkDuration)
	}
	if settings.ShortBreak != 5*time.Minute {
		t.Fatalf("short break = %v, want 5m", settings.ShortBreak)
	}
	if settings.LongBreak != 15*time.Minute {
		t.Fatalf("long break = %v, want 15m", settings.LongBreak)
	}
	if settings.SessionsPerLongBreak != 4 {
		t.Fatalf("sessions per long break = %d, want 4", settings.SessionsPerLongBreak)
	}
	if !settings.NotificationsEnabled {
		t.Fatal("notifications should be enabled by default")
	}
	if settings.Language != i18n.LanguageSystem {
		t.Fatalf("language = %q, want %q", settings.Language, i18n.LanguageSystem)
	}
}

func TestEngineConfigConversion(t *testing.T) {
	settings := Settings{
		WorkDuration:         50 * time.Minute,
		ShortBreak:           10 * time.Minute,
		LongBreak:            30 * time.Minute,
		SessionsPerLongBreak: 3,
		AutoStartBreaks:      true,
	}

	config := settings.EngineConfig()
	if config.Work.Duration != 50*time.Minute {
		t.Fatalf("work = %v, want 50m", config.Work.Duration)
	}
	if config.ShortBreak.Duration != 10*time.Minute {
		t.Fatalf("short break = %v, want 10m", config.ShortBreak.Duration)
	}
	if config.LongBreak.Duration != 30*time.Minute {
		t.Fatalf("long break = %v, want 30m", config.LongBreak.Duration)
	}
	if config.SessionsPerLongBreak != 3 {
		t.Fatalf("sessions = %d, want 3", config.SessionsPerLongBreak)
	}
	if !config.AutoStartBreaks || config.AutoStartWork {
		t.Fatalf("auto-start flags = %v/%v, want true/false", config.AutoStartBreaks, config.AutoStartWork)
	}
}

func TestNotifyConfigConversion(t *testing.T) {
	settings := Settings{NotificationsEnabled: true, SoundEnabled: true}
	config := settings.NotifyConfig()
	if !config.NotificationsEnabled || !config.SoundEnabled {
		t.Fatalf("notify config = %+v, want both enabled", config)
	}
}

func TestParsePositiveInt(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"25", 25, true},
		{"1", 1, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parsePositiveInt(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parsePositiveInt(%q) = %d, %v; want %d, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
