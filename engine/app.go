package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/glade/event"
)

// App drives a World through its startup stage and then one Step per frame
// It owns the time resource and flushes deferred commands after each stage
type App struct {
	World *World

	logger  *zap.Logger
	startup []StartupSystem
	started bool

	time    *TimeResource
	events  *event.Queue
	elapsed time.Duration
	frame   int64
}

// NewApp creates an App over w and installs the core resources
func NewApp(w *World, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		World:  w,
		logger: logger.Named("app"),
		time:   &TimeResource{},
		events: event.NewQueue(),
	}
	AddResource(w.Resources, a.time)
	AddResource(w.Resources, &EventQueueResource{Queue: a.events})
	return a
}

// AddStartupSystem registers a system to run once in Startup
func (a *App) AddStartupSystem(s StartupSystem) {
	a.startup = append(a.startup, s)
}

// AddSystem registers a per-frame system
func (a *App) AddSystem(s System) {
	a.World.AddSystem(s)
}

// Startup runs every startup system in registration order and applies their commands
// Subsequent calls are no-ops
func (a *App) Startup() {
	if a.started {
		return
	}
	a.started = true

	a.World.RunSafe(func() {
		for _, s := range a.startup {
			s.Startup()
			a.logger.Debug("startup system done", zap.String("system", s.Name()))
		}
		created := a.World.Commands().Apply()
		a.logger.Info("startup complete",
			zap.Int("spawned", len(created)),
			zap.Int("entities", a.World.EntityCount()))
	})
}

// Step advances one frame by delta: updates time, runs systems, applies commands
func (a *App) Step(delta time.Duration) {
	if !a.started {
		a.Startup()
	}
	if delta < 0 {
		delta = 0
	}

	a.World.RunSafe(func() {
		a.frame++
		a.elapsed += delta
		a.time.Update(delta, a.elapsed, a.frame)

		a.World.UpdateLocked()

		if created := a.World.Commands().Apply(); len(created) > 0 {
			a.logger.Debug("frame commands applied",
				zap.Int64("frame", a.frame),
				zap.Int("spawned", len(created)))
		}
	})
}

// Events returns the queue systems push to; the game loop is the single consumer
func (a *App) Events() *event.Queue {
	return a.events
}

// Time returns the live time resource
func (a *App) Time() *TimeResource {
	return a.time
}
