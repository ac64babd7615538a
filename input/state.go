package input

import (
	"sync"
	"time"
)

// Held is a snapshot of which movement keys are down this frame
type Held uint8

// Pressed reports whether k is held in the snapshot
func (h Held) Pressed(k Key) bool {
	return h&(1<<k) != 0
}

// With returns a snapshot with k held
func (h Held) With(k Key) Held {
	return h | 1<<k
}

// KeyState tracks movement keys from press events
// Terminals deliver presses and auto-repeats but no releases, so a key reads as held
// until holdWindow passes without another press
// Written by the input poller goroutine, read by the game loop
type KeyState struct {
	mu         sync.Mutex
	lastPress  [keyCount]time.Time
	holdWindow time.Duration
}

// NewKeyState creates a key state with the given hold window
func NewKeyState(holdWindow time.Duration) *KeyState {
	return &KeyState{holdWindow: holdWindow}
}

// Press records a press or repeat of k at now
func (ks *KeyState) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.lastPress[k] = now
}

// Snapshot returns the keys held at now
func (ks *KeyState) Snapshot(now time.Time) Held {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	var h Held
	for k := Key(0); k < keyCount; k++ {
		t := ks.lastPress[k]
		if t.IsZero() {
			continue
		}
		if age := now.Sub(t); age >= 0 && age < ks.holdWindow {
			h = h.With(k)
		}
	}
	return h
}

// InputResource is the per-frame key snapshot systems read
type InputResource struct {
	Held Held
}
