package pomodoro

import "time"

// Phase identifies a pomodoro interval.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// State represents the current Engine run state.
type State string

const (
	// StateIdle means the current phase is loaded but not counting down.
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventProgress      EventType = "progress"
	EventPhaseComplete EventType = "phase_complete"
	EventPhaseSkipped  EventType = "phase_skipped"
)

// Event represents an Engine update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	State     State
	Remaining time.Duration
	Duration  time.Duration
	Progress  float64
	// CompletedWork counts finished work phases in the current cycle.
	CompletedWork int
	At            time.Time
}
