package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-theft-auto/overlay/backend/opengl"
	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/internal/app"
	"github.com/go-theft-auto/overlay/internal/config"
)

func runOpenGL(ctx context.Context, a *app.App, cfg config.Config, logger *slog.Logger) error {
	win, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Title:  cfg.Display.Title,
		VSync:  cfg.Display.VSync,
	}, a.Input)
	if err != nil {
		return err
	}
	defer win.Close()

	size := win.Size()
	renderer, err := opengl.NewRenderer(int(size.X), int(size.Y))
	if err != nil {
		return err
	}
	defer renderer.Delete()

	bg := cfg.Display.ClearColorValue()
	last := time.Now()
	for !win.ShouldClose() && !a.Done() && ctx.Err() == nil {
		win.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		size = win.Size()
		renderer.Resize(int(size.X), int(size.Y))
		renderer.Clear(bg)

		dl := draw.Acquire()
		if err := a.Frame(ctx, dl, size, dt); err != nil {
			logger.Debug("frame", "err", err)
		}
		if err := renderer.Render(dl); err != nil {
			draw.Release(dl)
			return err
		}
		draw.Release(dl)
		win.SwapBuffers()
	}
	return nil
}
