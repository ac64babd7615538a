package component

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind identifies a collider shape
type ShapeKind uint8

const (
	ShapeCuboid ShapeKind = iota
	ShapeCylinder
)

// ColliderComponent is static collision geometry, centred on the entity translation
// Set once at spawn and never mutated
type ColliderComponent struct {
	Shape ShapeKind

	// HalfExtents is used by cuboids
	HalfExtents mgl32.Vec3

	// HalfHeight and Radius are used by Y-aligned cylinders
	HalfHeight float32
	Radius     float32
}

// Cuboid returns a box collider with the given half extents
func Cuboid(hx, hy, hz float32) ColliderComponent {
	return ColliderComponent{Shape: ShapeCuboid, HalfExtents: mgl32.Vec3{hx, hy, hz}}
}

// Cylinder returns a Y-aligned cylinder collider
func Cylinder(halfHeight, radius float32) ColliderComponent {
	return ColliderComponent{Shape: ShapeCylinder, HalfHeight: halfHeight, Radius: radius}
}

// HalfHeightY returns the vertical half size for either shape
func (c ColliderComponent) HalfHeightY() float32 {
	if c.Shape == ShapeCuboid {
		return c.HalfExtents.Y()
	}
	return c.HalfHeight
}
