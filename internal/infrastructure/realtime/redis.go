// Package realtime adapts redis pub/sub to the chat usecase's
// Publisher interface and to the websocket delivery layer.
package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisBroker struct {
	client *redis.Client
}

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func (b *RedisBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.client.Publish(ctx, channel, payload).Err()
}

// Subscribe returns a channel of raw payloads published to the named
// channel and a close function the caller must invoke when done.
func (b *RedisBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, func() error) {
	sub := b.client.Subscribe(ctx, channel)
	out := make(chan []byte)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, sub.Close
}
