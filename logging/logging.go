package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/glade/config"
)

// New builds the process logger
// With debug off the logger discards everything, the terminal belongs to the game
// With debug on it writes JSON lines to cfg.Dir/cfg.File, rotating an oversized file first
// The returned cleanup flushes and closes the file
func New(cfg config.LogConfig) (*zap.Logger, func(), error) {
	if !cfg.Debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, cfg.File)
	if err := rotate(path, cfg.MaxSize); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		zap.DebugLevel,
	)
	logger := zap.New(core)

	cleanup := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, cleanup, nil
}

// rotate renames path to path.1 when it exceeds maxSize bytes
func rotate(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil || maxSize <= 0 || info.Size() <= maxSize {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
