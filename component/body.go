package component

import "github.com/go-gl/mathgl/mgl32"

// VelocityComponent holds linear and angular velocity, consumed by the physics step
type VelocityComponent struct {
	Linear  mgl32.Vec3
	Angular mgl32.Vec3
}

// BodyKind selects how the physics step treats a body
type BodyKind uint8

const (
	// BodyFixed never moves
	BodyFixed BodyKind = iota
	// BodyDynamic is integrated and receives gravity
	BodyDynamic
)

// RigidBodyComponent marks an entity as simulated by the physics step
type RigidBodyComponent struct {
	Kind BodyKind
}

// LockedAxes is a bitmask of degrees of freedom the physics step must not change
type LockedAxes uint8

const (
	LockTranslationX LockedAxes = 1 << iota
	LockTranslationY
	LockTranslationZ
	LockRotationX
	LockRotationY
	LockRotationZ

	LockRotation    = LockRotationX | LockRotationY | LockRotationZ
	LockTranslation = LockTranslationX | LockTranslationY | LockTranslationZ
)

// Has reports whether every bit in mask is locked
func (l LockedAxes) Has(mask LockedAxes) bool {
	return l&mask == mask
}

// LockedAxesComponent restricts the degrees of freedom of a rigid body
type LockedAxesComponent struct {
	Axes LockedAxes
}
