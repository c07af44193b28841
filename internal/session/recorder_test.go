package session

import (
	"errors"
	"testing"
	"time"

	"gomodoro/internal/core/pomodoro"

	"github.com/google/uuid"
)

type fakeStore struct {
	saved []Session
	err   error
}

func (store *fakeStore) Save(session Session) error {
	store.saved = append(store.saved, session)
	return store.err
}

func feed(recorder *Recorder, events ...pomodoro.Event) {
	ch := make(chan pomodoro.Event, len(events))
	for _, event := range events {
		ch <- event
	}
	close(ch)
	recorder.Listen(ch)
}

func TestCompletedPhaseIsRecorded(t *testing.T) {
	store := &fakeStore{}
	recorder := NewRecorder(store)

	start := time.Now()
	end := start.Add(25 * time.Minute)
	feed(recorder,
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StateRunning, Duration: 25 * time.Minute, At: start},
		pomodoro.Event{Type: pomodoro.EventPhaseComplete, Phase: pomodoro.PhaseWork, Duration: 25 * time.Minute, At: end},
	)

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(store.saved))
	}
	saved := store.saved[0]
	if !saved.Completed {
		t.Error("session should be completed")
	}
	if saved.Phase != pomodoro.PhaseWork {
		t.Errorf("phase = %s", saved.Phase)
	}
	if !saved.StartedAt.Equal(start) || !saved.EndedAt.Equal(end) {
		t.Errorf("timeline = %v..%v, expected %v..%v", saved.StartedAt, saved.EndedAt, start, end)
	}
	if saved.ID == uuid.Nil {
		t.Error("session ID not assigned")
	}
}

func TestPauseDoesNotSplitSession(t *testing.T) {
	store := &fakeStore{}
	recorder := NewRecorder(store)

	feed(recorder,
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StateRunning, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StatePaused, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StateRunning, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventPhaseComplete, Phase: pomodoro.PhaseWork, At: time.Now()},
	)

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved session across pause/resume, got %d", len(store.saved))
	}
}

func TestSkippedPhaseIsIncomplete(t *testing.T) {
	store := &fakeStore{}
	recorder := NewRecorder(store)

	feed(recorder,
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseShortBreak, State: pomodoro.StateRunning, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventPhaseSkipped, Phase: pomodoro.PhaseShortBreak, At: time.Now()},
	)

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(store.saved))
	}
	if store.saved[0].Completed {
		t.Error("skipped session must not be completed")
	}
}

func TestSkipWithoutOpenSessionSavesNothing(t *testing.T) {
	store := &fakeStore{}
	recorder := NewRecorder(store)

	// A pending phase skipped before it ever ran.
	feed(recorder,
		pomodoro.Event{Type: pomodoro.EventPhaseSkipped, Phase: pomodoro.PhaseWork, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseShortBreak, State: pomodoro.StateIdle, At: time.Now()},
	)

	if len(store.saved) != 0 {
		t.Fatalf("expected no saved sessions, got %d", len(store.saved))
	}
}

func TestResetClosesSessionIncomplete(t *testing.T) {
	store := &fakeStore{}
	recorder := NewRecorder(store)

	feed(recorder,
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseLongBreak, State: pomodoro.StateRunning, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StateIdle, At: time.Now()},
	)

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved session after reset, got %d", len(store.saved))
	}
	if store.saved[0].Completed {
		t.Error("reset session must not be completed")
	}
}

func TestResetWithinSamePhaseClosesSession(t *testing.T) {
	store := &fakeStore{}
	recorder := NewRecorder(store)

	// Reset during the first work phase reloads work in the idle state.
	feed(recorder,
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StateRunning, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StateIdle, At: time.Now()},
	)

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 saved session after reset, got %d", len(store.saved))
	}
	if store.saved[0].Completed {
		t.Error("reset session must not be completed")
	}
}

func TestStoreFailureDoesNotStopRecording(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	recorder := NewRecorder(store)

	feed(recorder,
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseWork, State: pomodoro.StateRunning, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventPhaseComplete, Phase: pomodoro.PhaseWork, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventStateChange, Phase: pomodoro.PhaseShortBreak, State: pomodoro.StateRunning, At: time.Now()},
		pomodoro.Event{Type: pomodoro.EventPhaseComplete, Phase: pomodoro.PhaseShortBreak, At: time.Now()},
	)

	if len(store.saved) != 2 {
		t.Fatalf("expected 2 save attempts despite errors, got %d", len(store.saved))
	}
}
