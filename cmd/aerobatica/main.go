// Command aerobatica runs the game in a window or a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/phanxgames/aerobatica"
	"github.com/phanxgames/aerobatica/config"
	"github.com/phanxgames/aerobatica/ebitenshell"
	"github.com/phanxgames/aerobatica/sound"
	"github.com/phanxgames/aerobatica/telemetry"
	"github.com/phanxgames/aerobatica/termshell"
)

var configPath = flag.String("config", "", "config file (yaml, json or toml); default ./aerobatica.*")

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() (code int) {
	// The shells restore the terminal in their own defers, which run before
	// this recover sees the panic.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\naerobatica crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aerobatica: %v\n", err)
		return 1
	}

	var console io.Writer
	if cfg.Frontend == config.FrontendEbiten {
		console = os.Stderr
	}
	logger, logFile, err := setupLogging(cfg.Log, console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aerobatica: logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	session := aerobatica.NewSession(aerobatica.Options{
		Logger:    &logger,
		EnemyFire: cfg.Gameplay.EnemyFire,
	})

	if rec, err := telemetry.NewRecorder(telemetry.Meter()); err != nil {
		logger.Warn().Err(err).Msg("metrics disabled")
	} else {
		rec.Listen(session)
	}

	if cfg.Audio.Enabled {
		board := sound.NewBoard(cfg.Audio.Volume)
		if err := board.Init(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer board.Close()
			board.Listen(session)
		}
	}

	script, err := loadScript(cfg.Script)
	if err != nil {
		logger.Error().Err(err).Msg("input script")
		fmt.Fprintf(os.Stderr, "aerobatica: %v\n", err)
		return 1
	}

	var st aerobatica.State
	switch cfg.Frontend {
	case config.FrontendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		st, err = termshell.Run(ctx, session, termshell.Options{Script: script, Logger: &logger})
	default:
		st, err = runWindow(session, cfg, script, &logger)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("frontend failed")
		fmt.Fprintf(os.Stderr, "aerobatica: %v\n", err)
		return 1
	}

	stats := session.Stats()
	logger.Info().Stringer("outcome", st).Uint64("kills", stats.Kills).Uint64("shots", stats.Shots).Msg("exiting")
	fmt.Printf("%s: %d kills, %d shots\n", st, stats.Kills, stats.Shots)
	return 0
}

func loadScript(path string) (*aerobatica.Script, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input script: %w", err)
	}
	return aerobatica.LoadScript(data)
}

func runWindow(s *aerobatica.Session, cfg *config.Config, script *aerobatica.Script, logger *zerolog.Logger) (aerobatica.State, error) {
	rc := ebitenshell.RunConfig{
		Title:         cfg.Window.Title,
		Scale:         cfg.Window.Scale,
		TPS:           cfg.Window.TPS,
		ShowFPS:       cfg.Debug,
		Debug:         cfg.Debug,
		Script:        script,
		ScreenshotDir: cfg.Screenshots.Dir,
		Logger:        logger,
	}

	sheet, err := ebitenshell.LoadSheet(cfg.Assets.Sheet)
	if err != nil {
		logger.Warn().Err(err).Msg("using placeholder sprites")
	} else {
		rc.Sheet = sheet
	}
	if cfg.Assets.Background != "" {
		bg, err := ebitenshell.LoadBackground(cfg.Assets.Background)
		if err != nil {
			logger.Warn().Err(err).Msg("no background")
		} else {
			rc.Background = bg
		}
	}
	return ebitenshell.Run(s, rc)
}
