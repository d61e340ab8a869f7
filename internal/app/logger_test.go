package app

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay/internal/config"
)

func TestNewLogger_TermVerboseWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := config.Config{Backend: config.BackendTerm, Log: config.LogConfig{Verbose: true}}

	logger, closer, err := NewLogger(cfg, slog.LevelDebug)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	// The file is closed; a second close reports it.
	assert.Error(t, closer.Close())
}

func TestNewLogger_NoFileOtherwise(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, cfg := range []config.Config{
		{Backend: config.BackendTerm},
		{Backend: config.BackendOpenGL, Log: config.LogConfig{Verbose: true}},
	} {
		logger, closer, err := NewLogger(cfg, slog.LevelInfo)
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.NoError(t, closer.Close())
	}
	_, err := os.Stat(LogFile)
	assert.True(t, os.IsNotExist(err))
}
