package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"boltcard-wallet/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	connectionsChannel = "events:connections"
	channelsChannel    = "events:channels"
)

// EventFeed implements ports.ConnectionsWatcher and ports.ChannelsWatcher
// over Redis pub/sub. The node-facing side of the wallet publishes a
// JSON snapshot on every connection or channel state change; the
// pipeline consumes them while waiting for readiness.
type EventFeed struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewEventFeed creates a new pub/sub event feed.
func NewEventFeed(client *goredis.Client, log zerolog.Logger) *EventFeed {
	return &EventFeed{client: client, log: log}
}

// Connections subscribes to connection-status snapshots. The returned
// channel closes when ctx is done or the subscription ends.
func (f *EventFeed) Connections(ctx context.Context) (<-chan ports.ConnectionState, error) {
	sub := f.client.Subscribe(ctx, connectionsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("subscribe connections feed: %w", err)
	}

	out := make(chan ports.ConnectionState, 1)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var state ports.ConnectionState
				if err := json.Unmarshal([]byte(msg.Payload), &state); err != nil {
					f.log.Warn().Err(err).Msg("malformed connection event, skipping")
					continue
				}
				select {
				case out <- state:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Channels subscribes to channel-list snapshots.
func (f *EventFeed) Channels(ctx context.Context) (<-chan []ports.ChannelState, error) {
	sub := f.client.Subscribe(ctx, channelsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("subscribe channels feed: %w", err)
	}

	out := make(chan []ports.ChannelState, 1)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var snapshot []ports.ChannelState
				if err := json.Unmarshal([]byte(msg.Payload), &snapshot); err != nil {
					f.log.Warn().Err(err).Msg("malformed channel event, skipping")
					continue
				}
				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// PublishConnectionState pushes a connection snapshot to subscribers.
// Used by the node-facing side and by tests.
func (f *EventFeed) PublishConnectionState(ctx context.Context, state ports.ConnectionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode connection event: %w", err)
	}
	return f.client.Publish(ctx, connectionsChannel, raw).Err()
}

// PublishChannelStates pushes a channel-list snapshot to subscribers.
func (f *EventFeed) PublishChannelStates(ctx context.Context, snapshot []ports.ChannelState) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode channel event: %w", err)
	}
	return f.client.Publish(ctx, channelsChannel, raw).Err()
}
