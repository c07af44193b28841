package pomodoro

import (
	"sync"
	"time"

	"gomodoro/internal/core/model"
)

// Options contains runtime options for the Engine.
type Options struct {
	TickInterval time.Duration
}

// Status is a point-in-time view of the Engine for the UI.
type Status struct {
	Phase          Phase
	State          State
	Remaining      time.Duration
	Duration       time.Duration
	Progress       float64
	CompletedWork  int
	UntilLongBreak int
}

// Engine is a state machine that drives the pomodoro cycle: work,
// short break, and a long break after every Nth completed work phase.
type Engine struct {
	mu            sync.Mutex
	config        model.Config
	options       Options
	phase         Phase
	state         State
	remaining     time.Duration
	duration      time.Duration
	completedWork int
	subscribers   []chan Event
	stopCh        chan struct{}
	looping       bool
}

// New creates an Engine with the provided configuration. The config is
// normalized first so a non-positive duration can never be loaded.
func New(config model.Config, options Options) *Engine {
	config.Normalize()
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}

	engine := &Engine{
		config:  config,
		options: options,
		state:   StateIdle,
	}
	engine.loadPhaseLocked(PhaseWork)
	return engine
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.subscribers = append(engine.subscribers, ch)
	engine.mu.Unlock()
	return ch
}

// Run launches the ticking loop. The loop only decrements remaining
// time while the engine is in StateRunning. A stopped engine can be
// run again.
func (engine *Engine) Run() {
	engine.mu.Lock()
	if engine.looping {
		engine.mu.Unlock()
		return
	}
	engine.looping = true
	engine.stopCh = make(chan struct{})
	stopCh := engine.stopCh
	engine.mu.Unlock()

	go engine.loop(stopCh)
}

// Stop terminates the ticking loop and closes observer channels.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.looping {
		engine.mu.Unlock()
		return
	}
	close(engine.stopCh)
	engine.looping = false
	subscribers := engine.subscribers
	engine.subscribers = nil
	engine.mu.Unlock()

	for _, ch := range subscribers {
		close(ch)
	}
}

// Start begins counting down the pending phase. Starting a paused
// engine resumes it; starting a running engine is a no-op.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.state == StateRunning {
		engine.mu.Unlock()
		return
	}
	engine.state = StateRunning
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.emit(event)
}

// Pause freezes the countdown, preserving remaining time.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	if engine.state != StateRunning {
		engine.mu.Unlock()
		return
	}
	engine.state = StatePaused
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.emit(event)
}

// Resume continues a paused countdown.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	if engine.state != StatePaused {
		engine.mu.Unlock()
		return
	}
	engine.state = StateRunning
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.emit(event)
}

// Toggle starts, pauses, or resumes depending on the current state.
func (engine *Engine) Toggle() {
	engine.mu.Lock()
	state := engine.state
	engine.mu.Unlock()

	if state == StateRunning {
		engine.Pause()
		return
	}
	engine.Start()
}

// Reset returns the engine to the start of the cycle: a pending work
// phase with its full duration and zero completed work phases.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.completedWork = 0
	engine.state = StateIdle
	engine.loadPhaseLocked(PhaseWork)
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.emit(event)
}

// Skip abandons the current phase and loads the next one. A skipped
// work phase does not count toward the long break cadence.
func (engine *Engine) Skip() {
	engine.mu.Lock()
	skipped := Event{
		Type:          EventPhaseSkipped,
		Phase:         engine.phase,
		State:         engine.state,
		Remaining:     engine.remaining,
		Duration:      engine.duration,
		CompletedWork: engine.completedWork,
		At:            time.Now(),
	}
	next := engine.advancePhaseLocked(false)
	engine.mu.Unlock()

	engine.emit(skipped)
	engine.emit(next)
}

// UpdateConfig replaces the schedule. The current phase keeps counting
// with its original duration; the new values apply from the next phase.
func (engine *Engine) UpdateConfig(config model.Config) {
	config.Normalize()
	engine.mu.Lock()
	engine.config = config
	engine.mu.Unlock()
}

// Snapshot returns the current engine status.
func (engine *Engine) Snapshot() Status {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return Status{
		Phase:          engine.phase,
		State:          engine.state,
		Remaining:      engine.remaining,
		Duration:       engine.duration,
		Progress:       engine.progressLocked(),
		CompletedWork:  engine.completedWork,
		UntilLongBreak: engine.untilLongBreakLocked(),
	}
}

func (engine *Engine) loop(stopCh <-chan struct{}) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			engine.tick(tickTime)
		}
	}
}

func (engine *Engine) tick(now time.Time) {
	engine.mu.Lock()
	if engine.state != StateRunning {
		engine.mu.Unlock()
		return
	}

	engine.remaining -= engine.options.TickInterval
	if engine.remaining > 0 {
		event := Event{
			Type:          EventProgress,
			Phase:         engine.phase,
			State:         engine.state,
			Remaining:     engine.remaining,
			Duration:      engine.duration,
			Progress:      engine.progressLocked(),
			CompletedWork: engine.completedWork,
			At:            now,
		}
		engine.mu.Unlock()
		engine.emit(event)
		return
	}

	engine.remaining = 0
	completed := Event{
		Type:          EventPhaseComplete,
		Phase:         engine.phase,
		State:         engine.state,
		Duration:      engine.duration,
		Progress:      1,
		CompletedWork: engine.completedWork,
		At:            now,
	}
	next := engine.advancePhaseLocked(true)
	engine.mu.Unlock()

	engine.emit(completed)
	engine.emit(next)
}

// advancePhaseLocked loads the phase that follows the current one and
// returns the state change event describing it.
func (engine *Engine) advancePhaseLocked(completed bool) Event {
	var next Phase
	if engine.phase == PhaseWork {
		if completed {
			engine.completedWork++
		}
		if completed && engine.completedWork%engine.config.SessionsPerLongBreak == 0 {
			next = PhaseLongBreak
		} else {
			next = PhaseShortBreak
		}
	} else {
		if engine.phase == PhaseLongBreak {
			engine.completedWork = 0
		}
		next = PhaseWork
	}

	engine.loadPhaseLocked(next)
	if engine.autoStartLocked(next) {
		engine.state = StateRunning
	} else {
		engine.state = StateIdle
	}
	return engine.stateEventLocked()
}

func (engine *Engine) loadPhaseLocked(phase Phase) {
	engine.phase = phase
	switch phase {
	case PhaseShortBreak:
		engine.duration = engine.config.ShortBreak.Duration
	case PhaseLongBreak:
		engine.duration = engine.config.LongBreak.Duration
	default:
		engine.duration = engine.config.Work.Duration
	}
	engine.remaining = engine.duration
}

func (engine *Engine) autoStartLocked(phase Phase) bool {
	if phase == PhaseWork {
		return engine.config.AutoStartWork
	}
	return engine.config.AutoStartBreaks
}

// untilLongBreakLocked reports how many work phases remain before the
// next long break.
func (engine *Engine) untilLongBreakLocked() int {
	sessions := engine.config.SessionsPerLongBreak
	if sessions <= 0 {
		return 0
	}
	return sessions - engine.completedWork%sessions
}

func (engine *Engine) progressLocked() float64 {
	if engine.duration <= 0 {
		return 1
	}
	progress := float64(engine.duration-engine.remaining) / float64(engine.duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (engine *Engine) stateEventLocked() Event {
	return Event{
		Type:          EventStateChange,
		Phase:         engine.phase,
		State:         engine.state,
		Remaining:     engine.remaining,
		Duration:      engine.duration,
		Progress:      engine.progressLocked(),
		CompletedWork: engine.completedWork,
		At:            time.Now(),
	}
}

func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	subscribers := append([]chan Event(nil), engine.subscribers...)
	engine.mu.Unlock()
	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
