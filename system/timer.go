package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/event"
	"github.com/lixenwraith/glade/parameter"
)

// SpawnHook runs once per spawn timer completion with the world's command buffer
type SpawnHook func(cmds *engine.Commands)

// EmptySpawn queues an entity with no components
// The periodic spawn has no defined payload yet; replace the hook to give it one
func EmptySpawn(cmds *engine.Commands) {
	cmds.Spawn()
}

// SpawnTimerSystem ticks a repeating timer and fires the spawn hook on every completed period
type SpawnTimerSystem struct {
	world  *engine.World
	res    engine.CoreResources
	logger *zap.Logger

	timer component.Timer
	hook  SpawnHook
	total int64
}

// NewSpawnTimerSystem creates the spawn trigger; a nil hook disables spawning but keeps the notification
func NewSpawnTimerSystem(world *engine.World, timer component.Timer, hook SpawnHook, logger *zap.Logger) *SpawnTimerSystem {
	return &SpawnTimerSystem{
		world:  world,
		res:    engine.GetCoreResources(world),
		logger: logger.Named("spawn"),
		timer:  timer,
		hook:   hook,
	}
}

func (s *SpawnTimerSystem) Name() string {
	return "spawn_timer"
}

func (s *SpawnTimerSystem) Priority() int {
	return parameter.PrioritySpawnTimer
}

// Update advances the timer by the frame delta
// A delta spanning several periods fires once per period
func (s *SpawnTimerSystem) Update() {
	s.timer.Tick(s.res.Time.Delta)

	for i := 0; i < s.timer.TimesFinishedThisTick(); i++ {
		s.total++
		s.logger.Info("spawn timer finished",
			zap.Int64("total", s.total),
			zap.Int64("frame", s.res.Time.FrameNumber))

		s.res.Events.Queue.Push(event.GameEvent{
			Type:    event.EventSpawnTimerFired,
			Payload: &event.SpawnTimerPayload{Total: s.total},
			Frame:   s.res.Time.FrameNumber,
		})

		if s.hook != nil {
			s.hook(s.world.Commands())
		}
	}
}

// Fired returns the number of completions since startup
func (s *SpawnTimerSystem) Fired() int64 {
	return s.total
}

// Timer exposes the owned timer for display
func (s *SpawnTimerSystem) Timer() component.Timer {
	return s.timer
}
