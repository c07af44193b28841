package timerface

import (
	"testing"
	"time"

	"gomodoro/internal/core/pomodoro"
	"gomodoro/internal/i18n"

	"fyne.io/fyne/v2/test"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	return New(test.NewApp(), i18n.New("en"))
}

func TestWindowRendersRunningStatus(t *testing.T) {
	face := newTestWindow(t)

	face.applyUnsafe(pomodoro.Status{
		Phase:          pomodoro.PhaseShortBreak,
		State:          pomodoro.StateRunning,
		Remaining:      90 * time.Second,
		Duration:       2 * time.Minute,
		Progress:       0.25,
		UntilLongBreak: 2,
	})

	if face.clockLabel.Text != "01:30" {
		t.Errorf("clock = %q, want 01:30", face.clockLabel.Text)
	}
	if face.phaseLabel.Text != "Short break" {
		t.Errorf("phase = %q, want Short break", face.phaseLabel.Text)
	}
	if face.toggleButton.Text != "Pause" {
		t.Errorf("toggle = %q, want Pause", face.toggleButton.Text)
	}
}

func TestWindowRendersPendingAndPausedStates(t *testing.T) {
	face := newTestWindow(t)

	face.applyUnsafe(pomodoro.Status{
		Phase: pomodoro.PhaseWork,
		State: pomodoro.StateIdle,
	})
	if face.phaseLabel.Text != "Get ready" {
		t.Errorf("pending phase = %q, want Get ready", face.phaseLabel.Text)
	}
	if face.toggleButton.Text != "Start" {
		t.Errorf("pending toggle = %q, want Start", face.toggleButton.Text)
	}

	face.applyUnsafe(pomodoro.Status{
		Phase: pomodoro.PhaseWork,
		State: pomodoro.StatePaused,
	})
	if face.toggleButton.Text != "Resume" {
		t.Errorf("paused toggle = %q, want Resume", face.toggleButton.Text)
	}
}

func TestWindowHandlersFire(t *testing.T) {
	face := newTestWindow(t)

	toggled := false
	face.SetHandlers(Handlers{OnToggle: func() { toggled = true }})
	test.Tap(face.toggleButton)
	if !toggled {
		t.Error("toggle handler did not fire")
	}
}
