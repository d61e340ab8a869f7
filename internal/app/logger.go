package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-theft-auto/overlay/internal/config"
)

// LogFile is where the terminal backend writes verbose logs.
const LogFile = "overlay.log"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the host logger. It writes to stderr, except in the
// terminal backend where stderr would corrupt the screen: there records go
// to LogFile when verbose and are dropped otherwise. Close the returned
// closer on exit.
func NewLogger(cfg config.Config, level slog.Level) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Backend != config.BackendTerm {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nopCloser{}, nil
	}
	if !cfg.Log.Verbose {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	f, err := os.Create(LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}
