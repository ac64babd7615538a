package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/config"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/parameter"
)

// CameraRigSystem orbits the camera around the origin while enabled
// Position is a pure function of elapsed game time
type CameraRigSystem struct {
	world      *engine.World
	res        engine.CoreResources
	transforms *engine.Store[component.TransformComponent]

	cfg     config.CameraConfig
	enabled bool
}

// NewCameraRigSystem creates the camera rig, enabled per cfg.Orbit
func NewCameraRigSystem(world *engine.World, cfg config.CameraConfig) *CameraRigSystem {
	return &CameraRigSystem{
		world:      world,
		res:        engine.GetCoreResources(world),
		transforms: engine.GetStore[component.TransformComponent](world),
		cfg:        cfg,
		enabled:    cfg.Orbit,
	}
}

func (s *CameraRigSystem) Name() string {
	return "camera_rig"
}

func (s *CameraRigSystem) Priority() int {
	return parameter.PriorityCameraRig
}

// SetEnabled switches the orbit on or off; a disabled rig leaves the camera where it is
func (s *CameraRigSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Enabled reports whether the rig drives the camera
func (s *CameraRigSystem) Enabled() bool {
	return s.enabled
}

func (s *CameraRigSystem) Update() {
	if !s.enabled {
		return
	}

	camera := engine.Single[component.CameraComponent](s.world)
	pos := OrbitPosition(s.res.Time.ElapsedSeconds(), s.cfg)

	ok := s.transforms.Mutate(camera, func(t *component.TransformComponent) {
		t.Translation = pos
		t.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	})
	if !ok {
		panic("camera entity has no transform component")
	}
}

// OrbitPosition returns the camera position after elapsed seconds
// angle = elapsed * speed; x = r*sin(angle), z = r*cos(angle), y fixed
func OrbitPosition(elapsed float64, cfg config.CameraConfig) mgl32.Vec3 {
	angle := elapsed * float64(cfg.OrbitSpeed)
	r := float64(cfg.OrbitRadius)
	return mgl32.Vec3{
		float32(math.Sin(angle) * r),
		cfg.OrbitHeight,
		float32(math.Cos(angle) * r),
	}
}
