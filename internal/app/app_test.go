package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/input"
	"github.com/go-theft-auto/overlay/internal/config"
	"github.com/go-theft-auto/overlay/panels"
	"github.com/go-theft-auto/overlay/world"
)

var display = draw.Vec2{X: 800, Y: 600}

func testConfig() config.Config {
	return config.Config{
		Backend: config.BackendOpenGL,
		Display: config.DisplayConfig{Width: 800, Height: 600, FPS: 30, ClearColor: "#000000"},
		Panels: map[string]config.PanelConfig{
			panels.StatsName:    {Open: true, Hotkey: "F1"},
			panels.ConsoleName:  {Open: false, Hotkey: "F2"},
			panels.LauncherName: {Open: true, Hotkey: "Tab"},
			"ghost":             {Hotkey: "F9"},
		},
		Log: config.LogConfig{Level: "info"},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	return New(testConfig(), append([]Option{WithLogger(quietLogger())}, opts...)...)
}

func frame(t *testing.T, a *App) *draw.List {
	t.Helper()
	dl := draw.NewList()
	require.NoError(t, a.Frame(context.Background(), dl, display, 1.0/60))
	return dl
}

func isOpen(t *testing.T, a *App, name string) bool {
	t.Helper()
	open, ok := a.Registry.IsOpen(name)
	require.True(t, ok, name)
	return open
}

func textCmd(dl *draw.List, s string) (draw.Cmd, bool) {
	for _, c := range dl.Cmds() {
		if c.Kind == draw.CmdText && c.Text == s {
			return c, true
		}
	}
	return draw.Cmd{}, false
}

func TestNew_RegistersBundledPanels(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, []string{panels.StatsName, panels.ConsoleName, panels.LauncherName}, a.Registry.Names())
	assert.True(t, isOpen(t, a, panels.StatsName))
	assert.False(t, isOpen(t, a, panels.ConsoleName))
	assert.True(t, isOpen(t, a, panels.LauncherName))

	require.NotNil(t, a.Log, "console log published during setup")
	assert.True(t, world.Has[*panels.FrameStats](a.World))
	assert.True(t, world.Has[*overlay.Queue](a.World))
	assert.Len(t, a.hotkeys, 3, "hotkey for an unknown panel is dropped")
}

func TestFrame_DrawsOpenPanels(t *testing.T) {
	a := newTestApp(t)
	dl := frame(t, a)

	_, ok := textCmd(dl, "Stats")
	assert.True(t, ok)
	_, ok = textCmd(dl, "Console")
	assert.False(t, ok)
	assert.Equal(t, uint64(1), a.World.Frame)
	assert.Equal(t, display, a.World.DisplaySize)
}

func TestFrame_HotkeyToggles(t *testing.T) {
	a := newTestApp(t)

	a.Input.SetKey(input.KeyF2, true)
	dl := frame(t, a)
	assert.True(t, isOpen(t, a, panels.ConsoleName))
	_, ok := textCmd(dl, "Console")
	assert.True(t, ok, "toggled before the draw pass")

	// Held keys do not repeat.
	frame(t, a)
	assert.True(t, isOpen(t, a, panels.ConsoleName))

	a.Input.SetKey(input.KeyF2, false)
	a.Input.SetKey(input.KeyF2, true)
	frame(t, a)
	assert.False(t, isOpen(t, a, panels.ConsoleName))
}

func TestFrame_LauncherClickAppliedAfterDraw(t *testing.T) {
	a := newTestApp(t)
	dl := frame(t, a)

	btn, ok := textCmd(dl, "[x] stats")
	require.True(t, ok)
	a.Input.Click(input.MouseButtonLeft, btn.Rect.X+2, btn.Rect.Y+2)

	dl = frame(t, a)
	_, ok = textCmd(dl, "Stats")
	assert.True(t, ok, "stats still drawn in the frame that queued its hide")
	assert.False(t, isOpen(t, a, panels.StatsName))
	assert.Zero(t, a.Queue.Len())
}

func TestFrame_FailedCommandLogged(t *testing.T) {
	a := newTestApp(t)
	a.Queue.RequestOpen("ghost")

	err := a.Frame(context.Background(), draw.NewList(), display, 0.016)
	require.ErrorIs(t, err, overlay.ErrPanelNotFound)
	require.NotEmpty(t, a.Log.Lines())
	assert.Contains(t, a.Log.Lines()[a.Log.Len()-1], "ghost")
}

func TestFrame_Quit(t *testing.T) {
	a := newTestApp(t)
	frame(t, a)
	assert.False(t, a.Done())

	a.Input.SetKey(input.KeyEscape, true)
	frame(t, a)
	assert.True(t, a.Done())

	b := newTestApp(t)
	b.Input.CloseRequested = true
	frame(t, b)
	assert.True(t, b.Done())
}

func TestFrame_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	a := newTestApp(t, WithTracer(tp.Tracer("test")))

	frame(t, a)
	a.Queue.RequestHide("ghost")
	_ = a.Frame(context.Background(), draw.NewList(), display, 0.016)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "overlay.frame", spans[0].Name())
	assert.Empty(t, spans[0].Events())
	assert.NotEmpty(t, spans[1].Events(), "error recorded on the failing frame")
}

func TestWithPanels(t *testing.T) {
	var drawn int
	extra := overlay.PanelFunc[*draw.List, *world.World]{
		ID: "extra",
		Fn: func(*draw.List, *world.World, *bool) { drawn++ },
	}
	cfg := testConfig()
	cfg.Panels["extra"] = config.PanelConfig{Open: true}

	a := New(cfg, WithLogger(quietLogger()), WithPanels(extra))
	assert.Equal(t, "extra", a.Registry.Names()[3])

	frame(t, a)
	assert.Equal(t, 1, drawn)
}

func TestWithPanels_MixedCaseName(t *testing.T) {
	debug := overlay.PanelFunc[*draw.List, *world.World]{
		ID: "Debug",
		Fn: func(*draw.List, *world.World, *bool) {},
	}
	cfg := testConfig()
	cfg.Panels["debug"] = config.PanelConfig{Open: true, Hotkey: "F8"}

	a := New(cfg, WithLogger(quietLogger()), WithPanels(debug))
	assert.True(t, isOpen(t, a, "Debug"), "open flag found under the lowercased key")

	a.Input.SetKey(input.KeyF8, true)
	frame(t, a)
	assert.False(t, isOpen(t, a, "Debug"), "hotkey bound to the registered name")
}
