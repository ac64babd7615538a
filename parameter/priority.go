package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer     = 10 // Input to velocity before integration
	PrioritySpawnTimer = 20
	PriorityCameraRig  = 30
	PriorityPhysics    = 40 // After every velocity writer
)
