package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/lixenwraith/glade/audio"
	"github.com/lixenwraith/glade/config"
	"github.com/lixenwraith/glade/game"
	"github.com/lixenwraith/glade/logging"
)

var (
	configFlag  = flag.String("config", "", "Path to YAML config file")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging to logs/glade.log")
	seedFlag    = flag.String("seed", "", "Tree placement seed: integer or any string")
	profileFlag = flag.String("profile", "", "Profile the run: cpu, mem")
	muteFlag    = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "glade: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *seedFlag != "" {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileFlag)
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()

	session := uuid.New()
	seed := cfg.ResolveSeed(time.Now().UnixNano())
	logger = logger.With(zap.String("session", session.String()))
	logger.Info("starting", zap.Int64("seed", seed), zap.Int("fps", cfg.FPS))

	cues := audio.NewCues()
	if cfg.Audio.Enabled {
		if err := cues.Initialize(); err != nil {
			// Not fatal, the game runs silent
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer cues.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nGLADE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(cfg, screen, cues, rand.New(rand.NewSource(seed)), logger)
	err = g.Run(ctx)
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game: %w", err)
	}
	logger.Info("exited cleanly")
	return nil
}
