package component

import (
	"github.com/lixenwraith/glade/engine"
)

// PlayerComponent marks the single player-controlled body
type PlayerComponent struct{}

// GroundComponent marks the ground plane
type GroundComponent struct{}

// TreeVariant selects one of the tree models
type TreeVariant uint8

const (
	TreeTall TreeVariant = iota
	TreePlateau
	TreeThin
)

func (v TreeVariant) String() string {
	switch v {
	case TreePlateau:
		return "plateau"
	case TreeThin:
		return "thin"
	default:
		return "tall"
	}
}

// TreeComponent is a decorative obstacle placed at startup
type TreeComponent struct {
	Variant TreeVariant
	Scene   engine.Handle[engine.Scene]
}

// Color is linear RGB in [0, 1]
type Color struct {
	R, G, B float32
}

// RGB builds a Color
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// CameraComponent marks the single view camera
type CameraComponent struct {
	// FOV is the vertical perspective field of view in radians
	FOV        float32
	ClearColor Color
}

// PointLightComponent is an omnidirectional light
type PointLightComponent struct {
	Intensity      float32
	ShadowsEnabled bool
}

// MeshKind identifies a procedural mesh shape
type MeshKind uint8

const (
	MeshPlane MeshKind = iota
	MeshCapsule
	MeshCube
)

// Mesh is a procedural mesh description stored in an Assets registry
type Mesh struct {
	Kind MeshKind

	// Size is the plane edge or cube edge
	Size float32

	// Depth and Radius describe a capsule
	Depth  float32
	Radius float32
}

// Material is a flat-colored surface stored in an Assets registry
type Material struct {
	BaseColor Color
}

// MeshComponent attaches a mesh and material to a renderable entity
type MeshComponent struct {
	Mesh     engine.Handle[Mesh]
	Material engine.Handle[Material]
}
