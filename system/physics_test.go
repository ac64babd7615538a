package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/engine"
)

// TestPhysicsPlayerLands verifies the player falls onto the ground and rests there unrotated
func TestPhysicsPlayerLands(t *testing.T) {
	app := newSceneApp(t)
	app.AddSystem(NewPhysicsSystem(app.World))
	player := engine.Single[component.PlayerComponent](app.World)

	app.Step(100 * time.Millisecond)
	assert.Less(t, transformOf(t, app.World, player).Translation.Y(), float32(5))

	for i := 0; i < 200; i++ {
		app.Step(16 * time.Millisecond)
	}

	tr := transformOf(t, app.World, player)
	assert.InDelta(t, 0.51, tr.Translation.Y(), 1e-3)
	assert.Zero(t, tr.Translation.X())
	assert.Zero(t, tr.Translation.Z())
	assert.Equal(t, mgl32.QuatIdent(), tr.Rotation)

	ground := engine.Single[component.GroundComponent](app.World)
	assert.Equal(t, mgl32.Vec3{}, transformOf(t, app.World, ground).Translation, "fixed body never moves")
}

// TestPhysicsZeroDelta verifies a paused frame moves nothing
func TestPhysicsZeroDelta(t *testing.T) {
	app := newSceneApp(t)
	app.AddSystem(NewPhysicsSystem(app.World))
	player := engine.Single[component.PlayerComponent](app.World)

	app.Step(0)
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, transformOf(t, app.World, player).Translation)
}

// TestPhysicsTreeBlocksPlayer verifies a trunk pushes the walking player aside
func TestPhysicsTreeBlocksPlayer(t *testing.T) {
	app := newSceneApp(t)
	w := app.World
	app.AddSystem(NewPhysicsSystem(w))

	w.Commands().Spawn(
		engine.Component(component.TreeComponent{Variant: component.TreeTall}),
		engine.Component(component.TransformFromXYZ(1, 0, 0).WithScale(1.5)),
		engine.Component(component.Cylinder(5, 0.2)),
	)
	w.Commands().Apply()

	player := engine.Single[component.PlayerComponent](w)
	engine.GetStore[component.TransformComponent](w).Mutate(player, func(tr *component.TransformComponent) {
		tr.Translation = mgl32.Vec3{0, 0.51, 0}
	})

	for i := 0; i < 60; i++ {
		engine.GetStore[component.VelocityComponent](w).Mutate(player, func(v *component.VelocityComponent) {
			v.Linear[0] = 3
		})
		app.Step(16 * time.Millisecond)
	}

	tr := transformOf(t, w, player)
	assert.LessOrEqual(t, tr.Translation.X(), float32(1-0.45+1e-3), "stopped at the trunk")
}

// TestPhysicsSceneryStaysPut verifies ground and trees are never integrated, even with a dynamic body
func TestPhysicsSceneryStaysPut(t *testing.T) {
	app := newSceneApp(t)
	w := app.World
	app.AddSystem(NewPhysicsSystem(w))

	w.Commands().Spawn(
		engine.Component(component.TreeComponent{Variant: component.TreeThin}),
		engine.Component(component.TransformFromXYZ(6, 0, 6)),
		engine.Component(component.RigidBodyComponent{Kind: component.BodyDynamic}),
		engine.Component(component.VelocityComponent{Linear: mgl32.Vec3{1, 0, 0}}),
	)
	tree := w.Commands().Apply()[0]

	for i := 0; i < 10; i++ {
		app.Step(16 * time.Millisecond)
	}

	assert.Equal(t, mgl32.Vec3{6, 0, 6}, transformOf(t, w, tree).Translation)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, velocityOf(t, w, tree).Linear, "no gravity applied")
}
