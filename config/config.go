package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/glade/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// DecayMode selects how the player slows down with no key held
type DecayMode string

const (
	// DecayFrame multiplies velocity by factor*dt each frame (observed behaviour, frame-rate dependent)
	DecayFrame DecayMode = "frame"
	// DecayExponential multiplies velocity by factor^dt each frame
	DecayExponential DecayMode = "exponential"
)

// Config is the full runtime configuration
// Every field defaults to the matching constant in parameter
type Config struct {
	FPS  int    `yaml:"fps"`
	Seed string `yaml:"seed"`

	Player     PlayerConfig     `yaml:"player"`
	Trees      TreesConfig      `yaml:"trees"`
	SpawnTimer SpawnTimerConfig `yaml:"spawn_timer"`
	Camera     CameraConfig     `yaml:"camera"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
}

type PlayerConfig struct {
	MoveSpeed   float32   `yaml:"move_speed"`
	DecayFactor float32   `yaml:"decay_factor"`
	Decay       DecayMode `yaml:"decay"`
}

type TreesConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float32 `yaml:"min_radius"`
	MaxRadius float32 `yaml:"max_radius"`
	// PartitionedVariants replaces the two independent variant draws with one 80/10/10 draw
	PartitionedVariants bool `yaml:"partitioned_variants"`
}

type SpawnTimerConfig struct {
	Period time.Duration `yaml:"period"`
}

type CameraConfig struct {
	Orbit       bool    `yaml:"orbit"`
	OrbitRadius float32 `yaml:"orbit_radius"`
	OrbitHeight float32 `yaml:"orbit_height"`
	OrbitSpeed  float32 `yaml:"orbit_speed"`
}

type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Debug   bool   `yaml:"debug"`
	Dir     string `yaml:"dir"`
	File    string `yaml:"file"`
	MaxSize int64  `yaml:"max_size"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS: parameter.DefaultFPS,
		Player: PlayerConfig{
			MoveSpeed:   parameter.MoveSpeed,
			DecayFactor: parameter.DecayFactor,
			Decay:       DecayFrame,
		},
		Trees: TreesConfig{
			Count:     parameter.TreeCount,
			MinRadius: parameter.TreeMinRadius,
			MaxRadius: parameter.TreeMaxRadius,
		},
		SpawnTimer: SpawnTimerConfig{
			Period: parameter.SpawnTimerPeriod,
		},
		Camera: CameraConfig{
			Orbit:       parameter.CameraOrbitEnabled,
			OrbitRadius: parameter.CameraOrbitRadius,
			OrbitHeight: parameter.CameraOrbitHeight,
			OrbitSpeed:  parameter.CameraOrbitSpeed,
		},
		Input: InputConfig{
			HoldWindow: parameter.KeyHoldWindow,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Dir:     "logs",
			File:    "glade.log",
			MaxSize: 10 * 1024 * 1024,
		},
	}
}

// Load reads a YAML file over the defaults
// An empty path returns the defaults unchanged
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values for absent keys, then validates
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.Trees.Count < 0:
		return fmt.Errorf("%w: trees.count must not be negative, got %d", ErrInvalidConfig, c.Trees.Count)
	case c.Trees.MinRadius < 0 || c.Trees.MinRadius >= c.Trees.MaxRadius:
		return fmt.Errorf("%w: trees radius range [%g, %g) is empty", ErrInvalidConfig, c.Trees.MinRadius, c.Trees.MaxRadius)
	case c.SpawnTimer.Period <= 0:
		return fmt.Errorf("%w: spawn_timer.period must be positive, got %s", ErrInvalidConfig, c.SpawnTimer.Period)
	case c.Player.MoveSpeed < 0:
		return fmt.Errorf("%w: player.move_speed must not be negative", ErrInvalidConfig)
	case c.Player.Decay != DecayFrame && c.Player.Decay != DecayExponential:
		return fmt.Errorf("%w: player.decay must be %q or %q, got %q", ErrInvalidConfig, DecayFrame, DecayExponential, c.Player.Decay)
	case c.Input.HoldWindow <= 0:
		return fmt.Errorf("%w: input.hold_window must be positive", ErrInvalidConfig)
	}
	return nil
}

// FrameInterval returns the target frame period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ResolveSeed turns the configured seed into an RNG seed
// Integers are used as-is, other strings are hashed, empty falls back to fallback
func (c Config) ResolveSeed(fallback int64) int64 {
	if c.Seed == "" {
		return fallback
	}
	if n, err := strconv.ParseInt(c.Seed, 10, 64); err == nil {
		return n
	}
	return int64(xxhash.Sum64String(c.Seed))
}
