package parameter

import "math"

// Initial camera pose
const (
	CameraStartX = 0.0
	CameraStartY = 6.0
	CameraStartZ = 8.0

	// CameraFOV is the vertical field of view in radians
	CameraFOV = math.Pi / 3
)

// Camera orbit
const (
	// CameraOrbitEnabled is the default state of the orbiting rig
	CameraOrbitEnabled = false

	CameraOrbitRadius = 10.0
	CameraOrbitHeight = 3.0

	// CameraOrbitSpeed is the orbit angular speed in radians per second
	CameraOrbitSpeed = 0.4
)
