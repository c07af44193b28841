package model

import (
	"testing"
	"time"
)

func TestNormalizeKeepsValidConfig(t *testing.T) {
	config := Config{
		Work:                 PhaseConfig{Duration: 50 * time.Minute},
		ShortBreak:           PhaseConfig{Duration: 10 * time.Minute},
		LongBreak:            PhaseConfig{Duration: 30 * time.Minute},
		SessionsPerLongBreak: 2,
	}

	corrections := config.Normalize()
	if len(corrections) != 0 {
		t.Fatalf("expected no corrections, got %v", corrections)
	}
	if config.Work.Duration != 50*time.Minute {
		t.Errorf("work duration changed to %v", config.Work.Duration)
	}
	if config.SessionsPerLongBreak != 2 {
		t.Errorf("sessions per long break changed to %d", config.SessionsPerLongBreak)
	}
}

func TestNormalizeReplacesInvalidValues(t *testing.T) {
	config := Config{
		Work:                 PhaseConfig{Duration: -time.Minute},
		ShortBreak:           PhaseConfig{Duration: 0},
		LongBreak:            PhaseConfig{Duration: 30 * time.Minute},
		SessionsPerLongBreak: 0,
	}

	corrections := config.Normalize()
	if len(corrections) != 3 {
		t.Fatalf("expected 3 corrections, got %d: %v", len(corrections), corrections)
	}

	defaults := Defaults()
	if config.Work.Duration != defaults.Work.Duration {
		t.Errorf("work duration = %v, expected default %v", config.Work.Duration, defaults.Work.Duration)
	}
	if config.ShortBreak.Duration != defaults.ShortBreak.Duration {
		t.Errorf("short break duration = %v, expected default %v", config.ShortBreak.Duration, defaults.ShortBreak.Duration)
	}
	if config.LongBreak.Duration != 30*time.Minute {
		t.Errorf("valid long break duration changed to %v", config.LongBreak.Duration)
	}
	if config.SessionsPerLongBreak != defaults.SessionsPerLongBreak {
		t.Errorf("sessions per long break = %d, expected default %d", config.SessionsPerLongBreak, defaults.SessionsPerLongBreak)
	}
}

func TestNormalizeZeroValueEqualsDefaults(t *testing.T) {
	var config Config
	config.Normalize()

	if config != Defaults() {
		t.Errorf("normalized zero config = %+v, expected defaults %+v", config, Defaults())
	}
}
