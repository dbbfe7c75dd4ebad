// Package diagnostics carries data-view lifecycle events over the bus to
// the operator log and the metrics registry.
package diagnostics

import (
	"context"
	"log/slog"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/observability"
	"github.com/nfrund/octofit/internal/pubsub"
)

// LifecycleEvent is published once per settled or discarded load.
var LifecycleEvent = pubsub.NewEvent[dataview.Event]("dataview.lifecycle")

const source = "dataview"

// BusNotifier publishes load outcomes on the bus.
type BusNotifier struct {
	pub      pubsub.Publisher
	fallback dataview.Notifier
}

// NewBusNotifier returns a notifier publishing to pub. If a publish fails
// the event is written straight to logger instead.
func NewBusNotifier(pub pubsub.Publisher, logger *slog.Logger) *BusNotifier {
	return &BusNotifier{pub: pub, fallback: dataview.LogNotifier{Logger: logger}}
}

func (n *BusNotifier) Notify(ctx context.Context, ev dataview.Event) {
	if err := pubsub.Publish(ctx, n.pub, LifecycleEvent, source, ev); err != nil {
		n.fallback.Notify(ctx, ev)
	}
}

// Subscribe consumes lifecycle events until ctx ends, logging each one and
// recording it in the metrics.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	log := dataview.LogNotifier{Logger: logger}
	return pubsub.Subscribe(ctx, sub, LifecycleEvent, func(ctx context.Context, _ string, ev dataview.Event) error {
		log.Notify(ctx, ev)
		observability.RecordLoad(ev.Resource, Outcome(ev), ev.Elapsed)
		return nil
	})
}

// Outcome classifies an event for the loads counter.
func Outcome(ev dataview.Event) string {
	switch {
	case ev.Discarded:
		return observability.OutcomeDiscarded
	case ev.State == dataview.Failed && ev.Kind == dataview.KindDecode:
		return observability.OutcomeDecode
	case ev.State == dataview.Failed:
		return observability.OutcomeNetwork
	case ev.Records == 0:
		return observability.OutcomeEmpty
	default:
		return observability.OutcomeSuccess
	}
}
