package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay/internal/config"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	p, err := New(context.Background(), config.TelemetryConfig{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "frame")
	assert.False(t, span.SpanContext().IsValid(), "noop spans carry no context")
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_EnabledWithEndpoint(t *testing.T) {
	for _, endpoint := range []string{"localhost:4318", "http://localhost:4318/v1/traces"} {
		p, err := New(context.Background(), config.TelemetryConfig{Endpoint: endpoint, ServiceName: "test"})
		require.NoError(t, err, endpoint)
		assert.True(t, p.Enabled(), endpoint)

		_, span := p.Tracer().Start(context.Background(), "frame")
		assert.True(t, span.SpanContext().IsValid(), endpoint)

		// Nothing ended, so shutdown has nothing to export.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		assert.NoError(t, p.Shutdown(ctx), endpoint)
		cancel()
	}
}
