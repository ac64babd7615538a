package parameter

import "time"

// Spawn timer cue
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	CueFrequency      = 880.0
	CueDuration       = 50 * time.Millisecond
)
