package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/config"
	"github.com/lixenwraith/glade/engine"
)

func assertNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d: want %v, got %v", i, want, got)
	}
}

// TestOrbitPosition verifies the start point, a quarter turn and periodicity
func TestOrbitPosition(t *testing.T) {
	cfg := config.Default().Camera
	period := 2 * math.Pi / 0.4

	assertNear(t, mgl32.Vec3{0, 3, 10}, OrbitPosition(0, cfg))
	assertNear(t, mgl32.Vec3{10, 3, 0}, OrbitPosition(period/4, cfg))
	assertNear(t, mgl32.Vec3{0, 3, -10}, OrbitPosition(period/2, cfg))
	assertNear(t, OrbitPosition(0, cfg), OrbitPosition(period, cfg))
	assertNear(t, OrbitPosition(1.3, cfg), OrbitPosition(1.3+period, cfg))

	for _, elapsed := range []float64{0, 0.5, 3, 17.2} {
		p := OrbitPosition(elapsed, cfg)
		assert.InDelta(t, 10, math.Hypot(float64(p.X()), float64(p.Z())), 1e-4)
	}
}

// TestCameraRigDisabledByDefault verifies the camera keeps its initial pose
func TestCameraRigDisabledByDefault(t *testing.T) {
	app := newSceneApp(t)
	rig := NewCameraRigSystem(app.World, config.Default().Camera)
	app.AddSystem(rig)
	assert.False(t, rig.Enabled())

	app.Step(2 * time.Second)
	camera := engine.Single[component.CameraComponent](app.World)
	assert.Equal(t, mgl32.Vec3{0, 6, 8}, transformOf(t, app.World, camera).Translation)
}

// TestCameraRigOrbit verifies the enabled rig follows elapsed time and looks at the origin
func TestCameraRigOrbit(t *testing.T) {
	app := newSceneApp(t)
	cfg := config.Default().Camera
	cfg.Orbit = true
	rig := NewCameraRigSystem(app.World, cfg)
	app.AddSystem(rig)

	app.Step(1500 * time.Millisecond)
	app.Step(500 * time.Millisecond)

	camera := engine.Single[component.CameraComponent](app.World)
	tr := transformOf(t, app.World, camera)
	assertNear(t, OrbitPosition(2, cfg), tr.Translation)
	assertNear(t, tr.Translation.Mul(-1).Normalize(), tr.Rotation.Rotate(mgl32.Vec3{0, 0, -1}))

	rig.SetEnabled(false)
	app.Step(time.Second)
	assertNear(t, OrbitPosition(2, cfg), transformOf(t, app.World, camera).Translation)
}
