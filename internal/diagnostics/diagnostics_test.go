package diagnostics

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/observability"
	"github.com/nfrund/octofit/internal/pubsub"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLifecycleRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	out := &lockedBuffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	require.NoError(t, Subscribe(ctx, bus, logger))

	n := NewBusNotifier(bus, logger)
	n.Notify(ctx, dataview.Event{
		MountID:  "m-1",
		Resource: "teams",
		State:    dataview.Failed,
		Kind:     dataview.KindNetwork,
		Error:    "connection refused",
	})

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte(`msg="Error fetching teams"`))
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "connection refused")
	assert.Contains(t, out.String(), "mount_id=m-1")
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, pubsub.Message) error {
	return errors.New("bus closed")
}

func (failingPublisher) Close() error { return nil }

func TestBusNotifier_FallsBackToLog(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	NewBusNotifier(failingPublisher{}, logger).Notify(context.Background(), dataview.Event{
		Resource: "users",
		State:    dataview.Failed,
		Kind:     dataview.KindDecode,
	})

	assert.Contains(t, out.String(), `msg="Error fetching users"`)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		ev   dataview.Event
		want string
	}{
		{"success", dataview.Event{State: dataview.Success, Records: 3}, observability.OutcomeSuccess},
		{"empty", dataview.Event{State: dataview.Success}, observability.OutcomeEmpty},
		{"network", dataview.Event{State: dataview.Failed, Kind: dataview.KindNetwork}, observability.OutcomeNetwork},
		{"decode", dataview.Event{State: dataview.Failed, Kind: dataview.KindDecode}, observability.OutcomeDecode},
		{"discarded", dataview.Event{State: dataview.Success, Records: 1, Discarded: true}, observability.OutcomeDiscarded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.ev))
		})
	}
}
