package model

import (
	"fmt"
	"time"
)

// PhaseConfig defines the length of a single pomodoro phase.
type PhaseConfig struct {
	Duration time.Duration
}

// Config contains runtime settings for the pomodoro Engine.
type Config struct {
	Work       PhaseConfig
	ShortBreak PhaseConfig
	LongBreak  PhaseConfig

	// SessionsPerLongBreak is the number of completed work phases
	// before a long break replaces the short one.
	SessionsPerLongBreak int

	AutoStartBreaks bool
	AutoStartWork   bool
}

// Defaults returns the classic pomodoro schedule.
func Defaults() Config {
	return Config{
		Work:                 PhaseConfig{Duration: 25 * time.Minute},
		ShortBreak:           PhaseConfig{Duration: 5 * time.Minute},
		LongBreak:            PhaseConfig{Duration: 15 * time.Minute},
		SessionsPerLongBreak: 4,
	}
}

// Normalize replaces invalid values with defaults and reports each
// correction. The engine never receives a non-positive duration.
func (config *Config) Normalize() []string {
	defaults := Defaults()
	var corrections []string

	if config.Work.Duration <= 0 {
		corrections = append(corrections, fmt.Sprintf("work duration %v is not positive, using %v", config.Work.Duration, defaults.Work.Duration))
		config.Work = defaults.Work
	}
	if config.ShortBreak.Duration <= 0 {
		corrections = append(corrections, fmt.Sprintf("short break duration %v is not positive, using %v", config.ShortBreak.Duration, defaults.ShortBreak.Duration))
		config.ShortBreak = defaults.ShortBreak
	}
	if config.LongBreak.Duration <= 0 {
		corrections = append(corrections, fmt.Sprintf("long break duration %v is not positive, using %v", config.LongBreak.Duration, defaults.LongBreak.Duration))
		config.LongBreak = defaults.LongBreak
	}
	if config.SessionsPerLongBreak <= 0 {
		corrections = append(corrections, fmt.Sprintf("sessions per long break %d is not positive, using %d", config.SessionsPerLongBreak, defaults.SessionsPerLongBreak))
		config.SessionsPerLongBreak = defaults.SessionsPerLongBreak
	}

	return corrections
}
