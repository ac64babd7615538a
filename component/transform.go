package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent is the world pose of an entity
type TransformComponent struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// TransformFromXYZ returns an identity-rotation, unit-scale transform at (x, y, z)
func TransformFromXYZ(x, y, z float32) TransformComponent {
	return TransformComponent{
		Translation: mgl32.Vec3{x, y, z},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// WithScale returns a copy with uniform scale s
func (t TransformComponent) WithScale(s float32) TransformComponent {
	t.Scale = mgl32.Vec3{s, s, s}
	return t
}

// LookingAt returns a copy rotated so local -Z points at target
func (t TransformComponent) LookingAt(target, up mgl32.Vec3) TransformComponent {
	t.LookAt(target, up)
	return t
}

// LookAt rotates the transform so its local -Z axis points at target with local +Y toward up
// Degenerate input (target at the eye, or up parallel to the view direction) leaves the rotation unchanged
func (t *TransformComponent) LookAt(target, up mgl32.Vec3) {
	dir := target.Sub(t.Translation)
	if dir.Len() < 1e-6 {
		return
	}
	forward := dir.Normalize()

	right := forward.Cross(up)
	if right.Len() < 1e-6 {
		return
	}
	right = right.Normalize()
	trueUp := right.Cross(forward)

	basis := mgl32.Mat3FromCols(right, trueUp, forward.Mul(-1))
	t.Rotation = mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
}
