// Command overlay runs the panel overlay demo in an OpenGL window or a
// terminal.
//
//	go run ./cmd/overlay                   # OpenGL window
//	go run ./cmd/overlay -backend term     # terminal
//	go run ./cmd/overlay -config my.toml -v
//
// F1/F2/Tab toggle the bundled panels by default; Esc quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/internal/app"
	"github.com/go-theft-auto/overlay/internal/config"
	"github.com/go-theft-auto/overlay/internal/telemetry"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (default $OVERLAY_CONFIG or ./config/overlay.toml)")
	backend := flag.String("backend", "", "backend: opengl or term (overrides config)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *verbose {
		cfg.Log.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, _ := cfg.Log.SlogLevel()
	overlay.SetVerbose(level <= slog.LevelDebug)
	logger, logCloser, err := app.NewLogger(cfg, level)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tp, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	a := app.New(cfg, app.WithLogger(logger), app.WithTracer(tp.Tracer()))

	switch cfg.Backend {
	case config.BackendTerm:
		return runTerm(ctx, a, cfg)
	default:
		return runOpenGL(ctx, a, cfg, logger)
	}
}
