package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/glade/parameter"
)

// Cues plays short notification sounds
// Every method is safe to call before or without Initialize; without a speaker they do nothing
type Cues struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCues creates an uninitialized cue player
func NewCues() *Cues {
	return &Cues{
		sampleRate: beep.SampleRate(parameter.AudioSampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(c.sampleRate, c.sampleRate.N(parameter.AudioBufferWindow)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences the mixer
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// SetMuted toggles output without closing the speaker
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// Muted reports whether output is muted
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// PlaySpawn plays the spawn timer blip
// Returns false when nothing was queued
func (c *Cues) PlaySpawn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return false
	}

	tone, err := Blip(c.sampleRate, parameter.CueFrequency, parameter.CueDuration)
	if err != nil {
		return false
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
	return true
}

// Blip returns a finite sine tone of the given frequency and length
func Blip(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %gHz: %w", freq, err)
	}
	return beep.Take(sr.N(d), sine), nil
}
