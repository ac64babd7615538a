package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultIsValid verifies the built-in configuration passes validation
func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 80, cfg.Trees.Count)
	assert.Equal(t, time.Second, cfg.SpawnTimer.Period)
	assert.False(t, cfg.Camera.Orbit)
	assert.Equal(t, DecayFrame, cfg.Player.Decay)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

// TestLoadOverridesDefaults verifies a partial file keeps defaults for absent keys
func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glade.yaml")
	data := []byte(`
fps: 30
seed: forest
player:
  decay: exponential
trees:
  count: 12
  partitioned_variants: true
spawn_timer:
  period: 250ms
camera:
  orbit: true
input:
  hold_window: 200ms
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, DecayExponential, cfg.Player.Decay)
	assert.Equal(t, float32(3), cfg.Player.MoveSpeed)
	assert.Equal(t, 12, cfg.Trees.Count)
	assert.True(t, cfg.Trees.PartitionedVariants)
	assert.Equal(t, float32(4), cfg.Trees.MinRadius)
	assert.Equal(t, 250*time.Millisecond, cfg.SpawnTimer.Period)
	assert.True(t, cfg.Camera.Orbit)
	assert.Equal(t, float32(10), cfg.Camera.OrbitRadius)
	assert.Equal(t, 200*time.Millisecond, cfg.Input.HoldWindow)
}

// TestLoadEmptyPath verifies no file means defaults
func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoadMissingFile verifies read failures are wrapped
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestValidateRejects verifies every validation rule wraps ErrInvalidConfig
func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero fps", "fps: 0"},
		{"negative count", "trees: {count: -1}"},
		{"empty radius range", "trees: {min_radius: 15, max_radius: 4}"},
		{"negative min radius", "trees: {min_radius: -1}"},
		{"zero period", "spawn_timer: {period: 0s}"},
		{"negative speed", "player: {move_speed: -1}"},
		{"unknown decay", "player: {decay: linear}"},
		{"zero hold window", "input: {hold_window: 0s}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(tt.yaml), &cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// TestParseMalformed verifies YAML syntax errors are not reported as invalid values
func TestParseMalformed(t *testing.T) {
	cfg := Default()
	err := Parse([]byte("fps: [1, 2"), &cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

// TestResolveSeed verifies integer, string and fallback seeds
func TestResolveSeed(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(99), cfg.ResolveSeed(99))

	cfg.Seed = "-17"
	assert.Equal(t, int64(-17), cfg.ResolveSeed(99))

	cfg.Seed = "forest"
	a := cfg.ResolveSeed(99)
	assert.Equal(t, a, cfg.ResolveSeed(1), "hash ignores fallback")
	cfg.Seed = "meadow"
	assert.NotEqual(t, a, cfg.ResolveSeed(99))
}
