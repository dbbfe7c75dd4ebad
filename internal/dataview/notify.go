package dataview

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nfrund/octofit/internal/apiclient"
)

// Event reports the outcome of one load.
type Event struct {
	MountID  string        `json:"mount_id"`
	Resource string        `json:"resource"`
	State    State         `json:"state"`
	Records  int           `json:"records"`
	Kind     string        `json:"kind,omitempty"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
	// Discarded is set when the result arrived after the view was
	// unmounted or reloaded and was therefore not applied.
	Discarded bool `json:"discarded,omitempty"`
}

// Notifier receives load outcomes. It is the only place failures surface.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ev Event)

func (f NotifierFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

// LogNotifier writes events to a slog logger: failures at error level,
// everything else at debug.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, ev Event) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{
		"resource", ev.Resource,
		"mount_id", ev.MountID,
		"state", ev.State.String(),
		"records", ev.Records,
		"elapsed", ev.Elapsed,
	}
	switch {
	case ev.Discarded:
		logger.DebugContext(ctx, "Discarded stale load result", attrs...)
	case ev.State == Failed:
		logger.ErrorContext(ctx, "Error fetching "+ev.Resource, append(attrs, "kind", ev.Kind, "error", ev.Error)...)
	default:
		logger.DebugContext(ctx, "Loaded "+ev.Resource, attrs...)
	}
}

// Failure kinds reported in Event.Kind.
const (
	KindNetwork = "network"
	KindDecode  = "decode"
)

func failureKind(err error) string {
	if errors.Is(err, apiclient.ErrDecode) {
		return KindDecode
	}
	return KindNetwork
}
