package engine

import (
	"sync"
	"time"
)

// PausableClock turns wall-clock readings into frame deltas
// While paused every Tick reports zero, and time spent paused never leaks into the next delta
type PausableClock struct {
	mu       sync.Mutex
	provider TimeProvider
	last     time.Time
	paused   bool
	maxDelta time.Duration
}

// NewPausableClock creates a clock reading from provider
// maxDelta caps a single frame delta (zero disables the cap) so a stalled terminal does not teleport bodies
func NewPausableClock(provider TimeProvider, maxDelta time.Duration) *PausableClock {
	return &PausableClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the game time elapsed since the previous Tick
func (pc *PausableClock) Tick() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	delta := now.Sub(pc.last)
	pc.last = now

	if pc.paused || delta < 0 {
		return 0
	}
	if pc.maxDelta > 0 && delta > pc.maxDelta {
		return pc.maxDelta
	}
	return delta
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.paused = true
}

// Resume continues game time advancement from the resume instant
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		pc.paused = false
		pc.last = pc.provider.Now()
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	paused := pc.paused
	pc.mu.Unlock()

	if paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return !paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}
