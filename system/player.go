package system

import (
	"math"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/config"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/input"
	"github.com/lixenwraith/glade/parameter"
)

// PlayerSystem maps held direction keys to the player's planar velocity
type PlayerSystem struct {
	world *engine.World
	res   engine.CoreResources
	input *input.InputResource

	velocities *engine.Store[component.VelocityComponent]
	cfg        config.PlayerConfig
}

// NewPlayerSystem creates the player controller
func NewPlayerSystem(world *engine.World, cfg config.PlayerConfig) *PlayerSystem {
	return &PlayerSystem{
		world:      world,
		res:        engine.GetCoreResources(world),
		input:      engine.MustGetResource[*input.InputResource](world.Resources),
		velocities: engine.GetStore[component.VelocityComponent](world),
		cfg:        cfg,
	}
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// Update drives X from left/right and Z from up/down
func (s *PlayerSystem) Update() {
	player := engine.Single[component.PlayerComponent](s.world)
	held := s.input.Held
	dt := s.res.Time.DeltaSeconds()

	ok := s.velocities.Mutate(player, func(v *component.VelocityComponent) {
		v.Linear[0] = AxisVelocity(v.Linear[0], held.Pressed(input.KeyLeft), held.Pressed(input.KeyRight), dt, s.cfg)
		v.Linear[2] = AxisVelocity(v.Linear[2], held.Pressed(input.KeyUp), held.Pressed(input.KeyDown), dt, s.cfg)
	})
	if !ok {
		panic("player entity has no velocity component")
	}
}

// AxisVelocity returns the next velocity on one axis
// The negative key wins when both are held; with neither, the velocity decays
func AxisVelocity(current float32, negative, positive bool, dt float32, cfg config.PlayerConfig) float32 {
	switch {
	case negative:
		return -cfg.MoveSpeed
	case positive:
		return cfg.MoveSpeed
	}

	if cfg.Decay == config.DecayExponential {
		return current * float32(math.Pow(float64(cfg.DecayFactor), float64(dt)))
	}
	return current * cfg.DecayFactor * dt
}
