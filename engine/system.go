package engine

// System is a per-frame callback, run in ascending Priority order
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// StartupSystem runs once before the first frame
type StartupSystem interface {
	Name() string
	Startup()
}
