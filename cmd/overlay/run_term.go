package main

import (
	"context"

	"github.com/go-theft-auto/overlay/backend/term"
	"github.com/go-theft-auto/overlay/internal/app"
	"github.com/go-theft-auto/overlay/internal/config"
)

func runTerm(ctx context.Context, a *app.App, cfg config.Config) error {
	return term.Run(ctx, a, cfg.Display.FPS)
}
