// Package app is the backend-independent overlay runtime. A backend feeds
// it input, calls Frame once per frame and renders the resulting list.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/input"
	"github.com/go-theft-auto/overlay/internal/config"
	"github.com/go-theft-auto/overlay/panels"
	"github.com/go-theft-auto/overlay/world"
)

// Registry is the registry type hosted by App.
type Registry = overlay.Registry[*draw.List, *world.World]

// Panel is the panel type hosted by App.
type Panel = overlay.Panel[*draw.List, *world.World]

const consoleLines = 256

type hotkey struct {
	key   input.Key
	panel string
}

// App owns the world, the panel registry and the command queue.
type App struct {
	World    *world.World
	Input    *input.State
	Queue    *overlay.Queue
	Registry *Registry
	Log      *panels.Log

	hotkeys []hotkey
	quit    bool
	tracer  oteltrace.Tracer
	logger  *slog.Logger
	extra   []Panel
}

// Option configures an App.
type Option func(*App)

// WithTracer sets the tracer used for frame spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(a *App) {
		if t != nil {
			a.tracer = t
		}
	}
}

// WithLogger sets the logger for the app and its registry.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithPanels registers additional panels after the bundled ones.
func WithPanels(ps ...Panel) Option {
	return func(a *App) {
		a.extra = append(a.extra, ps...)
	}
}

// New builds the runtime, registers the bundled panels with their
// configured open flags and runs the setup pass.
func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		World:  world.New(),
		Input:  input.New(),
		Queue:  overlay.NewQueue(),
		tracer: noop.NewTracerProvider().Tracer(""),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.World.DisplaySize = draw.Vec2{X: float32(cfg.Display.Width), Y: float32(cfg.Display.Height)}
	world.Insert(a.World, a.Input)
	world.Insert(a.World, a.Queue)

	a.Registry = overlay.New[*draw.List, *world.World](overlay.WithLogger(a.logger))
	world.Insert[panels.Directory](a.World, a.Registry)

	all := append([]Panel{
		panels.NewStats(),
		panels.NewConsole(consoleLines),
		panels.NewLauncher(),
	}, a.extra...)
	// Config map keys arrive lowercased, so panel names match case-insensitively.
	byKey := make(map[string]string, len(all))
	for _, p := range all {
		key := strings.ToLower(p.Name())
		byKey[key] = p.Name()
		a.Registry.Register(p, cfg.Panels[key].Open)
	}
	a.Registry.Finalize(a.World)
	a.Log, _ = world.Get[*panels.Log](a.World)

	for name, key := range cfg.Hotkeys() {
		panel, ok := byKey[strings.ToLower(name)]
		if !ok {
			a.logger.Warn("app: hotkey for unknown panel", "panel", name, "key", key)
			continue
		}
		a.hotkeys = append(a.hotkeys, hotkey{key: key, panel: panel})
	}
	slices.SortFunc(a.hotkeys, func(x, y hotkey) int { return int(x.key) - int(y.key) })

	a.logger.Info("app: ready", "panels", a.Registry.Names(), "hotkeys", len(a.hotkeys))
	return a
}

// Frame runs one frame: hotkeys, the draw pass into dl, then queued
// commands. Input edge state is reset afterwards, so the backend should
// deliver the next frame's events after Frame returns. The returned error
// joins every queued command that failed.
func (a *App) Frame(ctx context.Context, dl *draw.List, display draw.Vec2, dt float32) error {
	_, span := a.tracer.Start(ctx, "overlay.frame",
		oteltrace.WithAttributes(attribute.Int64("frame", int64(a.World.Frame))))
	defer span.End()

	if a.Input.CloseRequested || a.Input.KeyPressed(input.KeyEscape) {
		a.quit = true
	}

	a.World.DeltaTime = dt
	a.World.DisplaySize = display

	for _, h := range a.hotkeys {
		if !a.Input.KeyPressed(h.key) {
			continue
		}
		open, err := a.Registry.Toggle(h.panel)
		if err != nil {
			a.logger.Warn("app: hotkey toggle failed", "panel", h.panel, "err", err)
			continue
		}
		a.logger.Debug("app: hotkey", "key", h.key, "panel", h.panel, "open", open)
	}

	a.Registry.DrawAll(dl, a.World)

	err := a.Registry.Apply(a.Queue)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "queued command failed")
		a.logger.Warn("app: queued command failed", "err", err)
		a.logf("error: %v", err)
	}

	span.SetAttributes(
		attribute.Int("draw.cmds", dl.Len()),
		attribute.Bool("panels.any_open", a.Registry.IsAnyOpen()),
	)
	a.World.Frame++
	a.Input.Reset()
	return err
}

// Done reports whether the user asked to quit (window close or Escape).
func (a *App) Done() bool {
	return a.quit
}

// Quit makes Done return true.
func (a *App) Quit() {
	a.quit = true
}

func (a *App) logf(format string, args ...any) {
	if a.Log == nil {
		return
	}
	a.Log.Add(fmt.Sprintf(format, args...))
}
