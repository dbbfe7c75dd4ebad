package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestPublisherTracingMiddleware(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	bridge := NewWatermillBridge(WithTracer(tp.Tracer("test")))
	defer bridge.Close()

	ctx := context.Background()
	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		Source:   "mount-1",
		Payload:  []byte(`{"state":"failed"}`),
		Metadata: map[string]string{"request_id": "req-123"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "mount-1", msg.Source)
		assert.Equal(t, "req-123", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeySource, "reserved keys are lifted out of metadata")
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "pubsub.publish.test.topic", spans[0].Name())
}

func TestSetupOTel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled tracing", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{Enabled: false})
		require.NoError(t, err)
		require.NotNil(t, tracer)

		_, span := tracer.Start(ctx, "test")
		span.End()
		assert.False(t, span.SpanContext().IsValid(), "no-op tracer produces invalid span contexts")
		cleanup()
	})

	t.Run("enabled tracing with unreachable collector", func(t *testing.T) {
		tracer, cleanup, err := SetupOTel(ctx, TracingConfig{
			Enabled:     true,
			ServiceName: "test-service",
			ZipkinURL:   "http://invalid-url:9411/api/v2/spans",
		})
		require.NoError(t, err)
		require.NotNil(t, tracer)
		cleanup()
	})
}

func TestTypedEvent(t *testing.T) {
	type ping struct {
		N int `json:"n"`
	}
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx := context.Background()
	event := NewEvent[ping]("test.ping")
	got := make(chan ping, 1)
	require.NoError(t, Subscribe(ctx, bridge, event, func(ctx context.Context, source string, p ping) error {
		assert.Equal(t, "src", source)
		got <- p
		return nil
	}))

	require.NoError(t, Publish(ctx, bridge, event, "src", ping{N: 3}))

	select {
	case p := <-got:
		assert.Equal(t, 3, p.N)
	case <-time.After(2 * time.Second):
		t.Fatal("typed event was not delivered")
	}
}
