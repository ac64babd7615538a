package parameter

import "time"

// Event queue sizing, must be a power of two for mask indexing
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Frame pacing
const (
	// DefaultFPS is the target frame rate of the game loop
	DefaultFPS = 60

	// MaxFrameDelta caps a single frame delta after a stall
	MaxFrameDelta = 250 * time.Millisecond
)
