package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glade/component"
)

// ApplyGravity accelerates vel downward by g over dt unless Y translation is locked
func ApplyGravity(vel mgl32.Vec3, g, dt float32, locks component.LockedAxes) mgl32.Vec3 {
	if locks.Has(component.LockTranslationY) {
		return vel
	}
	vel[1] -= g * dt
	return vel
}

// Integrate advances pos by vel over dt, skipping locked translation axes
func Integrate(pos, vel mgl32.Vec3, dt float32, locks component.LockedAxes) mgl32.Vec3 {
	if !locks.Has(component.LockTranslationX) {
		pos[0] += vel[0] * dt
	}
	if !locks.Has(component.LockTranslationY) {
		pos[1] += vel[1] * dt
	}
	if !locks.Has(component.LockTranslationZ) {
		pos[2] += vel[2] * dt
	}
	return pos
}

// IntegrateRotation spins rot by the angular velocity over dt
// Locked rotation axes are zeroed from the angular velocity first
func IntegrateRotation(rot mgl32.Quat, angular mgl32.Vec3, dt float32, locks component.LockedAxes) mgl32.Quat {
	if locks.Has(component.LockRotationX) {
		angular[0] = 0
	}
	if locks.Has(component.LockRotationY) {
		angular[1] = 0
	}
	if locks.Has(component.LockRotationZ) {
		angular[2] = 0
	}

	speed := angular.Len()
	if speed == 0 || dt == 0 {
		return rot
	}
	step := mgl32.QuatRotate(speed*dt, angular.Mul(1/speed))
	return step.Mul(rot).Normalize()
}
