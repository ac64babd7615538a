package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// contactSlop tolerates float drift for a body resting exactly on a surface
const contactSlop = 1e-3

// Contact is the outcome of resolving one body against one static collider
type Contact struct {
	Touching bool
	Normal   mgl32.Vec3
	Depth    float32
}

// GroundContact resolves a body with vertical half size halfH against the top face of a static cuboid
// prevY is the body centre height before this step, so a fast fall through a thin slab still lands
// The body rests on the cuboid only while its centre is within the cuboid's XZ footprint
// Returns the corrected position and velocity
func GroundContact(pos, vel mgl32.Vec3, prevY, halfH float32, groundPos, groundHalf mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, Contact) {
	if pos.X() < groundPos.X()-groundHalf.X() || pos.X() > groundPos.X()+groundHalf.X() ||
		pos.Z() < groundPos.Z()-groundHalf.Z() || pos.Z() > groundPos.Z()+groundHalf.Z() {
		return pos, vel, Contact{}
	}

	top := groundPos.Y() + groundHalf.Y()
	bottom := pos.Y() - halfH
	if bottom >= top {
		return pos, vel, Contact{}
	}
	// Bodies that were already below the top face fell off an edge, leave them falling
	crossed := prevY-halfH >= top-contactSlop
	inside := pos.Y() >= groundPos.Y()-groundHalf.Y()
	if !crossed && !inside {
		return pos, vel, Contact{}
	}

	depth := top - bottom
	pos[1] = top + halfH
	if vel[1] < 0 {
		vel[1] = 0
	}
	return pos, vel, Contact{Touching: true, Normal: mgl32.Vec3{0, 1, 0}, Depth: depth}
}

// CylinderContact pushes a moving Y-aligned cylinder A out of a static cylinder B in the XZ plane
// Cylinders interact only where their vertical spans overlap
// The velocity component driving A into B is removed; tangential motion is kept
func CylinderContact(posA, velA mgl32.Vec3, halfHA, radiusA float32, posB mgl32.Vec3, halfHB, radiusB float32) (mgl32.Vec3, mgl32.Vec3, Contact) {
	if posA.Y()-halfHA >= posB.Y()+halfHB || posA.Y()+halfHA <= posB.Y()-halfHB {
		return posA, velA, Contact{}
	}

	dx := posA.X() - posB.X()
	dz := posA.Z() - posB.Z()
	distSq := dx*dx + dz*dz
	minDist := radiusA + radiusB
	if distSq >= minDist*minDist {
		return posA, velA, Contact{}
	}

	var n mgl32.Vec3
	dist := mgl32.Vec2{dx, dz}.Len()
	if dist < 1e-6 {
		// Coincident centres, pick a fixed separation axis
		n = mgl32.Vec3{1, 0, 0}
	} else {
		n = mgl32.Vec3{dx / dist, 0, dz / dist}
	}

	depth := minDist - dist
	posA = posA.Add(n.Mul(depth))

	if vn := velA.Dot(n); vn < 0 {
		velA = velA.Sub(n.Mul(vn))
	}
	return posA, velA, Contact{Touching: true, Normal: n, Depth: depth}
}
