// Package notify defines the outbound notification contract. Delivery is
// best-effort and fire-and-forget: senders report failures through logs
// and metrics, never to the caller.
package notify

import "context"

// Destination is one delivery target: a webhook endpoint plus the channel
// label the message should be posted under.
type Destination struct {
	Name    string `yaml:"name"`
	Webhook string `yaml:"webhook"`
	Channel string `yaml:"channel"`
}

// Sink delivers a message text to every configured destination.
// Implementations must isolate per-destination failures and must not
// panic into the caller.
type Sink interface {
	Broadcast(ctx context.Context, text string)
}

// Discard is a Sink that drops everything. Useful when no destinations
// are configured and in tests.
type Discard struct{}

func (Discard) Broadcast(ctx context.Context, text string) {}
