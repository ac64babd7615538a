package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/parameter"
)

// SceneSetup builds the ground, player, light and camera once at startup
// Running it twice duplicates the scene
type SceneSetup struct {
	world     *engine.World
	meshes    *engine.Assets[component.Mesh]
	materials *engine.Assets[component.Material]
}

// NewSceneSetup creates the scene startup system
// The mesh and material registries must already be world resources
func NewSceneSetup(world *engine.World) *SceneSetup {
	return &SceneSetup{
		world:     world,
		meshes:    engine.MustGetResource[*engine.Assets[component.Mesh]](world.Resources),
		materials: engine.MustGetResource[*engine.Assets[component.Material]](world.Resources),
	}
}

func (s *SceneSetup) Name() string {
	return "scene"
}

// Startup queues the four scene entities
func (s *SceneSetup) Startup() {
	cmds := s.world.Commands()

	// Ground plane
	cmds.Spawn(
		engine.Component(component.MeshComponent{
			Mesh:     s.meshes.Add(component.Mesh{Kind: component.MeshPlane, Size: parameter.GroundSize}),
			Material: s.materials.Add(component.Material{BaseColor: component.RGB(0.3, 0.5, 0.3)}),
		}),
		engine.Component(component.TransformFromXYZ(0, 0, 0)),
		engine.Component(component.Cuboid(parameter.GroundHalfExtent, parameter.GroundHalfHeight, parameter.GroundHalfExtent)),
		engine.Component(component.RigidBodyComponent{Kind: component.BodyFixed}),
		engine.Component(component.GroundComponent{}),
	)

	// Player capsule
	cmds.Spawn(
		engine.Component(component.MeshComponent{
			Mesh: s.meshes.Add(component.Mesh{
				Kind:   component.MeshCapsule,
				Depth:  parameter.PlayerCapsuleDepth,
				Radius: parameter.PlayerCapsuleRadius,
			}),
			Material: s.materials.Add(component.Material{BaseColor: component.RGB(0.8, 0.7, 0.6)}),
		}),
		engine.Component(component.TransformFromXYZ(0, parameter.PlayerSpawnY, 0)),
		engine.Component(component.Cylinder(parameter.PlayerColliderHalfH, parameter.PlayerColliderRadius)),
		engine.Component(component.RigidBodyComponent{Kind: component.BodyDynamic}),
		engine.Component(component.VelocityComponent{}),
		engine.Component(component.LockedAxesComponent{Axes: component.LockRotation}),
		engine.Component(component.PlayerComponent{}),
	)

	// Light
	cmds.Spawn(
		engine.Component(component.PointLightComponent{
			Intensity:      parameter.LightIntensity,
			ShadowsEnabled: true,
		}),
		engine.Component(component.TransformFromXYZ(parameter.LightX, parameter.LightY, parameter.LightZ)),
	)

	// Camera
	cmds.Spawn(
		engine.Component(component.CameraComponent{
			FOV:        parameter.CameraFOV,
			ClearColor: component.RGB(0.5, 0.5, 1.0),
		}),
		engine.Component(component.TransformFromXYZ(parameter.CameraStartX, parameter.CameraStartY, parameter.CameraStartZ).
			LookingAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})),
	)
}
