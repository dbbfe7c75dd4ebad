package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/trace"
)

// Metadata keys carrying the Message envelope through a watermill message.
const (
	metaKeySource = "source"
	metaKeyTopic  = "topic"
)

// WatermillBridge is the in-process bus: Publisher and Subscriber over a
// watermill GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger *slog.Logger
}

// BridgeOption configures NewWatermillBridge.
type BridgeOption func(*bridgeOptions)

type bridgeOptions struct {
	tracer trace.Tracer
	logger *slog.Logger
	buffer int64
}

// WithTracer records one producer span per published message.
func WithTracer(t trace.Tracer) BridgeOption {
	return func(o *bridgeOptions) { o.tracer = t }
}

// WithLogger routes watermill's own logging and handler errors to l.
func WithLogger(l *slog.Logger) BridgeOption {
	return func(o *bridgeOptions) { o.logger = l }
}

// NewWatermillBridge creates the bus. Lifecycle events are small and
// bursty (five views settling at once), so each subscriber gets a buffered
// channel.
func NewWatermillBridge(opts ...BridgeOption) *WatermillBridge {
	o := bridgeOptions{logger: slog.Default(), buffer: 64}
	for _, opt := range opts {
		opt(&o)
	}

	goChannel := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: o.buffer,
	}, slogAdapter{o.logger.With("component", "bus")})

	var pub message.Publisher = goChannel
	if o.tracer != nil {
		pub = &tracingPublisher{publisher: goChannel, tracer: o.tracer}
	}
	return &WatermillBridge{pub: pub, sub: goChannel, logger: o.logger}
}

func toWatermill(ctx context.Context, msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.SetContext(ctx)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeySource, msg.Source)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	msg := Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Source:   wmMsg.Metadata.Get(metaKeySource),
		Payload:  wmMsg.Payload,
		Metadata: make(map[string]string, len(wmMsg.Metadata)),
	}
	for k, v := range wmMsg.Metadata {
		if k != metaKeySource && k != metaKeyTopic {
			msg.Metadata[k] = v
		}
	}
	return msg
}

func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.pub.Publish(msg.Topic, toWatermill(ctx, msg))
}

// Subscribe handles messages on a background goroutine until ctx ends or
// the bus closes. A handler error is logged and the message still acked,
// because GoChannel redelivers nacked messages immediately and a failing
// diagnostic handler would spin.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			if err := handler(wmMsg.Context(), fromWatermill(wmMsg)); err != nil {
				wb.logger.Error("Failed to handle bus message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			wmMsg.Ack()
		}
		wb.logger.Debug("Bus subscription ended", "topic", topic)
	}()
	return nil
}

// Close shuts the bus down; open subscriptions end.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}

// slogAdapter lets watermill log through slog.
type slogAdapter struct{ l *slog.Logger }

func (a slogAdapter) args(fields watermill.LogFields) []any {
	out := make([]any, 0, 2*len(fields))
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

func (a slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.l.Error(msg, append(a.args(fields), "error", err)...)
}
func (a slogAdapter) Info(msg string, fields watermill.LogFields)  { a.l.Info(msg, a.args(fields)...) }
func (a slogAdapter) Debug(msg string, fields watermill.LogFields) { a.l.Debug(msg, a.args(fields)...) }
func (a slogAdapter) Trace(msg string, fields watermill.LogFields) { a.l.Debug(msg, a.args(fields)...) }

func (a slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return slogAdapter{a.l.With(a.args(fields)...)}
}
