package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/glade/audio"
	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/config"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/event"
	"github.com/lixenwraith/glade/input"
	"github.com/lixenwraith/glade/parameter"
	"github.com/lixenwraith/glade/render"
	"github.com/lixenwraith/glade/system"
)

// ErrNoScreen is returned by Run for a game built without a terminal screen
var ErrNoScreen = errors.New("game: run requires a screen")

// Game wires the world, its systems, the terminal and audio into one frame loop
type Game struct {
	cfg    config.Config
	logger *zap.Logger
	screen tcell.Screen
	cues   *audio.Cues

	app      *engine.App
	clock    *engine.PausableClock
	provider engine.TimeProvider
	keys     *input.KeyState
	inputRes *input.InputResource
	renderer *render.Renderer

	cameraRig *system.CameraRigSystem
	spawner   *system.SpawnTimerSystem

	actions   chan input.Action
	hud       render.HUD
	lastFrame time.Time
}

type options struct {
	provider engine.TimeProvider
	hook     system.SpawnHook
}

// Option customizes a Game at construction
type Option func(*options)

// WithTimeProvider replaces the wall clock, used by tests to drive frames deterministically
func WithTimeProvider(p engine.TimeProvider) Option {
	return func(o *options) { o.provider = p }
}

// WithSpawnHook replaces the default empty-entity spawn on each timer completion
func WithSpawnHook(hook system.SpawnHook) Option {
	return func(o *options) { o.hook = hook }
}

// New builds the game; rng seeds tree placement; cues may be uninitialized or nil
// A nil screen builds a headless game that can be driven with Frame but not Run
func New(cfg config.Config, screen tcell.Screen, cues *audio.Cues, rng *rand.Rand, logger *zap.Logger, opts ...Option) *Game {
	o := options{
		provider: engine.NewMonotonicTimeProvider(),
		hook:     system.EmptySpawn,
	}
	for _, opt := range opts {
		opt(&o)
	}

	world := engine.NewWorld()
	app := engine.NewApp(world, logger)

	inputRes := &input.InputResource{}
	engine.AddResource(world.Resources, inputRes)
	engine.AddResource(world.Resources, engine.NewAssets[component.Mesh]())
	engine.AddResource(world.Resources, engine.NewAssets[component.Material]())
	engine.AddResource(world.Resources, engine.NewAssetServer())

	app.AddStartupSystem(system.NewSceneSetup(world))
	app.AddStartupSystem(system.NewTreeSpawner(world, rng, cfg.Trees, logger))

	cameraRig := system.NewCameraRigSystem(world, cfg.Camera)

	app.AddSystem(system.NewPlayerSystem(world, cfg.Player))
	spawner := system.NewSpawnTimerSystem(world,
		component.NewTimer(cfg.SpawnTimer.Period, component.TimerRepeating), o.hook, logger)
	app.AddSystem(spawner)
	app.AddSystem(cameraRig)
	app.AddSystem(system.NewPhysicsSystem(world))

	g := &Game{
		cfg:       cfg,
		logger:    logger.Named("game"),
		screen:    screen,
		cues:      cues,
		app:       app,
		clock:     engine.NewPausableClock(o.provider, parameter.MaxFrameDelta),
		provider:  o.provider,
		keys:      input.NewKeyState(cfg.Input.HoldWindow),
		inputRes:  inputRes,
		cameraRig: cameraRig,
		spawner:   spawner,
		actions:   make(chan input.Action, 16),
		hud:       render.HUD{Orbit: cameraRig.Enabled()},
	}
	if screen != nil {
		g.renderer = render.NewRenderer(screen, world)
	}
	return g
}

// App exposes the underlying App
func (g *Game) App() *engine.App {
	return g.app
}

// HUD returns the status as of the last frame
func (g *Game) HUD() render.HUD {
	return g.hud
}

// Run executes the startup stage and then the frame loop until ctx ends or the player quits
// The caller owns screen Init and Fini
func (g *Game) Run(ctx context.Context) error {
	if g.screen == nil {
		return ErrNoScreen
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.app.Startup()
	res := g.app.World.Resources
	g.logger.Info("scene ready",
		zap.Int("entities", g.app.World.EntityCount()),
		zap.Int("meshes", engine.MustGetResource[*engine.Assets[component.Mesh]](res).Len()),
		zap.Int("materials", engine.MustGetResource[*engine.Assets[component.Material]](res).Len()),
		zap.Int("scenes", engine.MustGetResource[*engine.AssetServer](res).Len()))
	g.lastFrame = g.provider.Now()
	if g.cues != nil {
		g.hud.AudioOn = g.cfg.Audio.Enabled
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { return g.pollInput(egCtx, cancel) })
	eg.Go(func() error { return g.loop(egCtx, cancel) })
	eg.Go(func() error {
		<-egCtx.Done()
		// Wake the poller blocked in PollEvent
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	err := eg.Wait()
	g.logger.Info("game stopped",
		zap.Int64("spawns", g.spawner.Fired()),
		zap.Int("undispatched_events", g.app.Events().Len()),
		zap.Error(err))
	return err
}

func (g *Game) pollInput(ctx context.Context, quit context.CancelFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("input poller crashed: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		ev := g.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			key, action, ok := input.Translate(ev)
			if !ok {
				continue
			}
			if action == input.ActionNone {
				g.keys.Press(key, g.provider.Now())
				continue
			}
			if action == input.ActionQuit {
				quit()
				return nil
			}
			select {
			case g.actions <- action:
			case <-ctx.Done():
				return nil
			}
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

func (g *Game) loop(ctx context.Context, quit context.CancelFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game loop crashed: %v\n%s", r, debug.Stack())
		}
	}()

	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case action := <-g.actions:
			g.HandleAction(action)
		case <-ticker.C:
			g.Frame()
		}
	}
}

// HandleAction applies a discrete key action
func (g *Game) HandleAction(action input.Action) {
	events := g.app.Events()
	frame := g.app.Time().FrameNumber

	switch action {
	case input.ActionTogglePause:
		paused := g.clock.Toggle()
		events.Push(event.GameEvent{
			Type:    event.EventPauseToggled,
			Payload: &event.PausePayload{Paused: paused},
			Frame:   frame,
		})
	case input.ActionToggleCamera:
		enabled := !g.cameraRig.Enabled()
		g.cameraRig.SetEnabled(enabled)
		events.Push(event.GameEvent{
			Type:    event.EventCameraOrbitToggled,
			Payload: &event.CameraOrbitPayload{Enabled: enabled},
			Frame:   frame,
		})
	case input.ActionToggleMute:
		if g.cues == nil {
			return
		}
		muted := !g.cues.Muted()
		g.cues.SetMuted(muted)
		events.Push(event.GameEvent{
			Type:    event.EventAudioMuteToggled,
			Payload: &event.AudioMutePayload{Muted: muted},
			Frame:   frame,
		})
	}
}

// Frame advances the simulation by the clock delta, dispatches events and draws
// While paused the simulation is skipped but the frame is still drawn
func (g *Game) Frame() {
	now := g.provider.Now()
	if wall := now.Sub(g.lastFrame); wall > 0 {
		fps := 1 / wall.Seconds()
		if g.hud.FPS == 0 {
			g.hud.FPS = fps
		} else {
			g.hud.FPS = 0.9*g.hud.FPS + 0.1*fps
		}
	}
	g.lastFrame = now

	delta := g.clock.Tick()
	if !g.clock.IsPaused() {
		g.inputRes.Held = g.keys.Snapshot(now)
		g.app.Step(delta)
	}
	timer := g.spawner.Timer()
	g.hud.NextSpawn = timer.Remaining()

	g.dispatch(g.app.Events().Consume())

	if g.renderer != nil {
		g.renderer.Draw(g.hud)
	}
}

func (g *Game) dispatch(events []event.GameEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventSpawnTimerFired:
			if p, ok := ev.Payload.(*event.SpawnTimerPayload); ok {
				g.hud.SpawnsFired = p.Total
			}
			if g.cues != nil && g.cfg.Audio.Enabled {
				g.cues.PlaySpawn()
			}
		case event.EventPauseToggled:
			if p, ok := ev.Payload.(*event.PausePayload); ok {
				g.hud.Paused = p.Paused
				g.logger.Info("pause toggled", zap.Bool("paused", p.Paused), zap.Int64("frame", ev.Frame))
			}
		case event.EventCameraOrbitToggled:
			if p, ok := ev.Payload.(*event.CameraOrbitPayload); ok {
				g.hud.Orbit = p.Enabled
				g.logger.Info("camera orbit toggled", zap.Bool("enabled", p.Enabled), zap.Int64("frame", ev.Frame))
			}
		case event.EventAudioMuteToggled:
			if p, ok := ev.Payload.(*event.AudioMutePayload); ok {
				g.hud.AudioOn = g.cfg.Audio.Enabled && !p.Muted
				g.logger.Info("audio mute toggled", zap.Bool("muted", p.Muted), zap.Int64("frame", ev.Frame))
			}
		}
	}
}
