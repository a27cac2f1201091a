// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/carterperez-dev/sage-nfm/internal/config"
)

func TestSetSpanErrorMarksSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	ctx, span := provider.Tracer("test").Start(context.Background(), "mps.Create")
	assert.NotEmpty(t, TraceIDFromContext(ctx))

	SetSpanError(ctx, errors.New("insert failed"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "insert failed", ended[0].Status().Description)
}

func TestTraceIDFromContextWithoutSpan(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestStartTracingRequiresEndpoint(t *testing.T) {
	_, err := StartTracing(context.Background(), config.OtelConfig{Enabled: true}, config.AppConfig{})
	require.Error(t, err)
}

func TestSampleRate(t *testing.T) {
	tests := []struct {
		configured float64
		want       float64
	}{
		{configured: 0, want: defaultSampleRate},
		{configured: -1, want: defaultSampleRate},
		{configured: 1.5, want: defaultSampleRate},
		{configured: 0.5, want: 0.5},
		{configured: 1, want: 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, sampleRate(tt.configured), 1e-9)
	}
}
