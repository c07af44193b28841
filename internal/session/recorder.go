package session

import (
	"log"

	"gomodoro/internal/core/pomodoro"

	"github.com/google/uuid"
)

// Recorder turns engine events into history sessions. A session opens
// when a phase starts counting and closes when the phase completes, is
// skipped, or is abandoned by a reset. Store failures are logged and
// never interrupt recording.
type Recorder struct {
	store   Store
	current *Session
}

// NewRecorder creates a Recorder writing to the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Listen consumes engine events until the channel closes.
func (recorder *Recorder) Listen(events <-chan pomodoro.Event) {
	for event := range events {
		recorder.handle(event)
	}
}

func (recorder *Recorder) handle(event pomodoro.Event) {
	switch event.Type {
	case pomodoro.EventStateChange:
		recorder.handleStateChange(event)
	case pomodoro.EventPhaseComplete:
		recorder.close(event, true)
	case pomodoro.EventPhaseSkipped:
		recorder.close(event, false)
	}
}

func (recorder *Recorder) handleStateChange(event pomodoro.Event) {
	// A reset abandons the open session: it either jumps to another
	// phase or reloads the same phase in the idle state.
	if recorder.current != nil && (recorder.current.Phase != event.Phase || event.State == pomodoro.StateIdle) {
		recorder.current.EndedAt = event.At
		recorder.save(*recorder.current)
		recorder.current = nil
	}

	if event.State != pomodoro.StateRunning || recorder.current != nil {
		return
	}
	recorder.current = &Session{
		ID:        uuid.New(),
		Phase:     event.Phase,
		StartedAt: event.At,
		Duration:  event.Duration,
	}
}

func (recorder *Recorder) close(event pomodoro.Event, completed bool) {
	if recorder.current == nil || recorder.current.Phase != event.Phase {
		return
	}
	recorder.current.EndedAt = event.At
	recorder.current.Completed = completed
	recorder.save(*recorder.current)
	recorder.current = nil
}

func (recorder *Recorder) save(session Session) {
	if err := recorder.store.Save(session); err != nil {
		log.Printf("session: save history: %v", err)
	}
}
