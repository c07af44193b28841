package session

import (
	"time"

	"gomodoro/internal/core/pomodoro"

	"github.com/google/uuid"
)

// Session is one recorded run of a pomodoro phase.
type Session struct {
	ID        uuid.UUID
	Phase     pomodoro.Phase
	StartedAt time.Time
	EndedAt   time.Time
	// Duration is the configured phase length, not the elapsed time.
	Duration  time.Duration
	Completed bool
}

// Store persists finished sessions.
type Store interface {
	Save(session Session) error
}
