package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlipLength verifies the cue is a finite stream of the requested duration
func TestBlipLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	s, err := Blip(sr, 880, 50*time.Millisecond)
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sr.N(50*time.Millisecond), total)
}

// TestBlipInvalidFrequency verifies generator errors are wrapped
func TestBlipInvalidFrequency(t *testing.T) {
	_, err := Blip(beep.SampleRate(44100), 30000, time.Millisecond)
	assert.Error(t, err)
}

// TestCuesSilentWithoutSpeaker verifies cues are no-ops before Initialize
func TestCuesSilentWithoutSpeaker(t *testing.T) {
	c := NewCues()
	assert.False(t, c.PlaySpawn())
	c.SetMuted(true)
	assert.True(t, c.Muted())
	assert.False(t, c.PlaySpawn())
	c.SetMuted(false)
	assert.False(t, c.Muted())
	c.Close()
}
