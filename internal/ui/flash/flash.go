package flash

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains flashing timing values.
type Config struct {
	OnDuration  Range
	OffDuration Range
}

// DefaultConfig returns timings for a noticeable but calm tray flash.
func DefaultConfig() Config {
	return Config{
		OnDuration:  Range{Min: 450 * time.Millisecond, Max: 700 * time.Millisecond},
		OffDuration: Range{Min: 450 * time.Millisecond, Max: 700 * time.Millisecond},
	}
}

// Flasher alternates two tray icons to draw attention while a finished
// phase waits for the user to start the next one.
type Flasher struct {
	mu         sync.Mutex
	config     Config
	updateIcon func(fyne.Resource)
	cancel     context.CancelFunc
}

// New creates a Flasher that pushes icons through updateIcon.
func New(config Config, updateIcon func(fyne.Resource)) *Flasher {
	return &Flasher{
		config:     config,
		updateIcon: updateIcon,
	}
}

// Start begins alternating between the active and dimmed icons. A
// running flash is cancelled first, so Start can be called repeatedly.
func (flasher *Flasher) Start(ctx context.Context, active, dimmed fyne.Resource) {
	flasher.mu.Lock()
	if flasher.cancel != nil {
		flasher.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	flasher.cancel = cancel
	flasher.mu.Unlock()

	go flasher.run(runCtx, active, dimmed)
}

// Stop terminates the flash and restores the given icon.
func (flasher *Flasher) Stop(restore fyne.Resource) {
	flasher.mu.Lock()
	if flasher.cancel != nil {
		flasher.cancel()
		flasher.cancel = nil
	}
	flasher.mu.Unlock()

	if restore != nil {
		flasher.updateIcon(restore)
	}
}

func (flasher *Flasher) run(ctx context.Context, active, dimmed fyne.Resource) {
	// A cancelled run may overlap the next one, so every run samples
	// from its own source.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for {
		if !flasher.push(ctx, active) {
			return
		}
		if !sleepWithContext(ctx, flasher.config.OnDuration.Random(rng)) {
			return
		}
		if !flasher.push(ctx, dimmed) {
			return
		}
		if !sleepWithContext(ctx, flasher.config.OffDuration.Random(rng)) {
			return
		}
	}
}

// push delivers an icon update unless the flash was cancelled. Updates
// are serialized with Stop so a stale frame can never follow the
// restored icon.
func (flasher *Flasher) push(ctx context.Context, icon fyne.Resource) bool {
	flasher.mu.Lock()
	defer flasher.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	flasher.updateIcon(icon)
	return true
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
