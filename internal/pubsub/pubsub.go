package pubsub

import (
	"context"
)

// Message is the envelope passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "dataview.lifecycle").
	Topic string
	// Source identifies the emitter, typically a mounted view id.
	Source string
	// Payload is the JSON-encoded body.
	Payload []byte
	// Metadata carries arbitrary string context such as a request id.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts delivering messages for topic to handler. It returns
	// once the subscription is active; delivery stops when ctx is canceled
	// or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
