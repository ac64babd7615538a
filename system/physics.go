package system

import (
	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/core"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/parameter"
	"github.com/lixenwraith/glade/physics"
)

// PhysicsSystem is the kinematic stand-in for a rigid body solver
// Dynamic bodies get gravity and integration, then rest on the ground and slide around tree trunks
type PhysicsSystem struct {
	world *engine.World
	res   engine.CoreResources

	transforms *engine.Store[component.TransformComponent]
	velocities *engine.Store[component.VelocityComponent]
	bodies     *engine.Store[component.RigidBodyComponent]
	locks      *engine.Store[component.LockedAxesComponent]
	colliders  *engine.Store[component.ColliderComponent]
	grounds    *engine.Store[component.GroundComponent]
	trees      *engine.Store[component.TreeComponent]

	gravity float32
}

// NewPhysicsSystem creates the physics step
func NewPhysicsSystem(world *engine.World) *PhysicsSystem {
	return &PhysicsSystem{
		world:      world,
		res:        engine.GetCoreResources(world),
		transforms: engine.GetStore[component.TransformComponent](world),
		velocities: engine.GetStore[component.VelocityComponent](world),
		bodies:     engine.GetStore[component.RigidBodyComponent](world),
		locks:      engine.GetStore[component.LockedAxesComponent](world),
		colliders:  engine.GetStore[component.ColliderComponent](world),
		grounds:    engine.GetStore[component.GroundComponent](world),
		trees:      engine.GetStore[component.TreeComponent](world),
		gravity:    parameter.Gravity,
	}
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

type staticBody struct {
	transform component.TransformComponent
	collider  component.ColliderComponent
}

func (s *PhysicsSystem) Update() {
	dt := s.res.Time.DeltaSeconds()
	if dt == 0 {
		return
	}

	grounds := s.statics(s.world.Query().With(s.grounds).With(s.colliders).With(s.transforms).Execute())
	trees := s.statics(s.world.Query().With(s.trees).With(s.colliders).With(s.transforms).Execute())

	// Scenery is static even if it carries a body
	dynamic := s.world.Query().
		With(s.bodies).
		With(s.velocities).
		With(s.transforms).
		Without(s.grounds).
		Without(s.trees).
		Execute()

	for _, e := range dynamic {
		if body, _ := s.bodies.GetComponent(e); body.Kind != component.BodyDynamic {
			continue
		}
		s.step(e, dt, grounds, trees)
	}
}

func (s *PhysicsSystem) statics(entities []core.Entity) []staticBody {
	result := make([]staticBody, 0, len(entities))
	for _, e := range entities {
		t, _ := s.transforms.GetComponent(e)
		c, _ := s.colliders.GetComponent(e)
		result = append(result, staticBody{transform: t, collider: c})
	}
	return result
}

func (s *PhysicsSystem) step(e core.Entity, dt float32, grounds, trees []staticBody) {
	t, _ := s.transforms.GetComponent(e)
	v, _ := s.velocities.GetComponent(e)
	lock, _ := s.locks.GetComponent(e)
	collider, hasCollider := s.colliders.GetComponent(e)

	prevY := t.Translation.Y()
	v.Linear = physics.ApplyGravity(v.Linear, s.gravity, dt, lock.Axes)
	t.Translation = physics.Integrate(t.Translation, v.Linear, dt, lock.Axes)
	t.Rotation = physics.IntegrateRotation(t.Rotation, v.Angular, dt, lock.Axes)

	if hasCollider {
		halfH := collider.HalfHeightY()
		for _, g := range grounds {
			if g.collider.Shape != component.ShapeCuboid {
				continue
			}
			t.Translation, v.Linear, _ = physics.GroundContact(t.Translation, v.Linear, prevY, halfH,
				g.transform.Translation, g.collider.HalfExtents)
		}

		if collider.Shape == component.ShapeCylinder {
			for _, tree := range trees {
				t.Translation, v.Linear, _ = physics.CylinderContact(
					t.Translation, v.Linear, collider.HalfHeight, collider.Radius,
					tree.transform.Translation, tree.collider.HalfHeight, tree.collider.Radius)
			}
		}
	}

	s.transforms.SetComponent(e, t)
	s.velocities.SetComponent(e, v)
}
