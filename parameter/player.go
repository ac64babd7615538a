package parameter

// Player movement
const (
	// MoveSpeed is the planar speed in units per second while a direction key is held
	MoveSpeed = 3.0

	// DecayFactor scales velocity each frame with no key held, multiplied by the frame delta in seconds
	DecayFactor = 0.5
)

// Player capsule
const (
	PlayerSpawnY         = 5.0
	PlayerCapsuleDepth   = 0.5
	PlayerCapsuleRadius  = 0.25
	PlayerColliderHalfH  = 0.5
	PlayerColliderRadius = 0.25
)
