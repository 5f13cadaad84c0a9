package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/phanxgames/aerobatica/config"
)

const (
	logFileName = "aerobatica.log"
	maxLogSize  = 10 * 1024 * 1024 // rotate beyond 10 MiB
)

// setupLogging builds the process logger. The log file lives in cfg.Dir and
// is rotated on start when it has grown past maxLogSize. console, when not
// nil, also receives coloured output; the terminal frontend passes nil so
// nothing is written over the game. The returned file is nil when logging is
// disabled.
func setupLogging(cfg config.LogConfig, console io.Writer) (zerolog.Logger, *os.File, error) {
	if !cfg.Enabled {
		return zerolog.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(cfg.Dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(cfg.Dir, fmt.Sprintf("aerobatica_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(path, rotated); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotate log: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true}}
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().Logger()
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("logging set up")
	return logger, file, nil
}

// parseLevel falls back to info for unknown names.
func parseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
