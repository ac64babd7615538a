package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/glade/config"
)

// TestNewDisabled verifies logging without debug writes nothing
func TestNewDisabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, cleanup, err := New(config.LogConfig{Dir: dir, File: "glade.log"})
	require.NoError(t, err)
	defer cleanup()

	logger.Info("dropped")
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

// TestNewDebugWritesJSON verifies debug logging produces one JSON object per line
func TestNewDebugWritesJSON(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := New(config.LogConfig{Debug: true, Dir: dir, File: "glade.log", MaxSize: 1 << 20})
	require.NoError(t, err)

	logger.Named("spawn").Info("spawn timer finished", zap.Int64("total", 3))
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "glade.log"))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "spawn timer finished", entry["msg"])
	assert.Equal(t, "spawn", entry["logger"])
	assert.Equal(t, float64(3), entry["total"])
}

// TestRotateOversized verifies an oversized log moves aside at startup
func TestRotateOversized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glade.log")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 64), 0o644))

	_, cleanup, err := New(config.LogConfig{Debug: true, Dir: dir, File: "glade.log", MaxSize: 32})
	require.NoError(t, err)
	cleanup()

	rotated, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Len(t, rotated, 64)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

// TestRotateSmallFileKept verifies files under the limit are appended to
func TestRotateSmallFileKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glade.log")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	require.NoError(t, rotate(path, 1024))
	_, err := os.Stat(path + ".1")
	assert.True(t, os.IsNotExist(err))
}
