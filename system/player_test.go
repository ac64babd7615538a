package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/config"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/input"
)

func playerConfig() config.PlayerConfig {
	return config.Default().Player
}

// TestAxisVelocityHeld verifies a held key drives the axis to full speed in one frame
func TestAxisVelocityHeld(t *testing.T) {
	cfg := playerConfig()
	assert.Equal(t, float32(-3), AxisVelocity(0, true, false, 0.016, cfg))
	assert.Equal(t, float32(3), AxisVelocity(-3, false, true, 0.016, cfg))
	// Negative key wins when both are held
	assert.Equal(t, float32(-3), AxisVelocity(1, true, true, 0.016, cfg))
}

// TestAxisVelocityDecayNeverIncreases verifies |v| does not grow with no key held for dt up to 2s
func TestAxisVelocityDecayNeverIncreases(t *testing.T) {
	cfg := playerConfig()
	for _, v := range []float32{-3, -0.7, 0, 0.25, 3} {
		for step := 0; step <= 200; step++ {
			dt := float32(step) / 100
			next := AxisVelocity(v, false, false, dt, cfg)
			assert.LessOrEqual(t, math.Abs(float64(next)), math.Abs(float64(v)), "v=%g dt=%g", v, dt)
		}
	}

	assert.InDelta(t, 3*0.5*0.016, AxisVelocity(3, false, false, 0.016, cfg), 1e-7)
}

// TestAxisVelocityExponentialDecay verifies the frame-rate independent mode halves speed per second
func TestAxisVelocityExponentialDecay(t *testing.T) {
	cfg := playerConfig()
	cfg.Decay = config.DecayExponential

	assert.InDelta(t, 1.5, AxisVelocity(3, false, false, 1, cfg), 1e-6)

	v := float32(3)
	for i := 0; i < 4; i++ {
		v = AxisVelocity(v, false, false, 0.25, cfg)
	}
	assert.InDelta(t, 1.5, v, 1e-5)
}

// TestPlayerSystem verifies held keys reach the player's velocity through the input resource
func TestPlayerSystem(t *testing.T) {
	app := newSceneApp(t)
	w := app.World
	app.AddSystem(NewPlayerSystem(w, playerConfig()))
	in := engine.MustGetResource[*input.InputResource](w.Resources)
	player := engine.Single[component.PlayerComponent](w)

	in.Held = input.Held(0).With(input.KeyLeft).With(input.KeyDown)
	app.Step(16 * time.Millisecond)

	v := velocityOf(t, w, player).Linear
	assert.Equal(t, float32(-3), v.X())
	assert.Equal(t, float32(3), v.Z())
	assert.Zero(t, v.Y())

	in.Held = 0
	app.Step(100 * time.Millisecond)
	v = velocityOf(t, w, player).Linear
	assert.InDelta(t, -3*0.5*0.1, v.X(), 1e-6)
	assert.InDelta(t, 3*0.5*0.1, v.Z(), 1e-6)
}
