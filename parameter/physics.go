package parameter

// Kinematic physics step
const (
	// Gravity is the downward acceleration applied to dynamic bodies, units per second squared
	Gravity = 9.81
)
