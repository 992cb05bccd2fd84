package service

import (
	"context"
	"errors"

	"boltcard-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

var errFeedClosed = errors.New("readiness feed closed before preconditions held")

// ReadinessWaiter suspends the pipeline until the peer connection is
// established and every channel is either terminated or usable. There
// is deliberately no timeout: the wait is unbounded and cancellation
// belongs to the caller's context.
type ReadinessWaiter struct {
	connections ports.ConnectionsWatcher
	channels    ports.ChannelsWatcher
	log         zerolog.Logger
}

// NewReadinessWaiter creates a new ReadinessWaiter.
func NewReadinessWaiter(connections ports.ConnectionsWatcher, channels ports.ChannelsWatcher, log zerolog.Logger) *ReadinessWaiter {
	return &ReadinessWaiter{connections: connections, channels: channels, log: log}
}

// WaitUntilReady consumes the connection-status sequence until the peer
// reports established, then the channel-list sequence until all
// channels are ready.
func (w *ReadinessWaiter) WaitUntilReady(ctx context.Context) error {
	conns, err := w.connections.Connections(ctx)
	if err != nil {
		return err
	}

waitPeer:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case state, ok := <-conns:
			if !ok {
				return errFeedClosed
			}
			if state.PeerEstablished {
				w.log.Debug().Msg("connected to peer")
				break waitPeer
			}
		}
	}

	chans, err := w.channels.Channels(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snapshot, ok := <-chans:
			if !ok {
				return errFeedClosed
			}
			if allChannelsReady(snapshot) {
				w.log.Debug().Int("channels", len(snapshot)).Msg("all channels ready")
				return nil
			}
			w.log.Debug().Msg("one or more channels not ready")
		}
	}
}

func allChannelsReady(channels []ports.ChannelState) bool {
	for _, ch := range channels {
		if !ch.IsTerminated && !ch.IsUsable {
			return false
		}
	}
	return true
}
