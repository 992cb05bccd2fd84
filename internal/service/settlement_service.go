package service

import (
	"context"
	"fmt"
	"time"

	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// SettlementCoordinator guarantees that each distinct withdraw request
// is claimed by exactly one process, across the foreground app and the
// background notifier, which share nothing but a single versioned
// key-value slot. Claims are taken with an optimistic compare-and-swap
// against that slot; a concurrent writer forces a re-read and retry.
type SettlementCoordinator struct {
	store   ports.VersionedStore
	process domain.ProcessID
	log     zerolog.Logger
	now     func() time.Time
}

// NewSettlementCoordinator creates a new SettlementCoordinator acting
// on behalf of the given process identity.
func NewSettlementCoordinator(store ports.VersionedStore, process domain.ProcessID, log zerolog.Logger) *SettlementCoordinator {
	return &SettlementCoordinator{
		store:   store,
		process: process,
		log:     log,
		now:     time.Now,
	}
}

// TryMarkHandled atomically claims the request for this process.
// Returns true when this process won the claim and must pay, false when
// the request was already claimed by some process. The retry loop is
// unbounded: it ends only on success, an existing claim, a hard I/O
// error, or context cancellation.
func (s *SettlementCoordinator) TryMarkHandled(ctx context.Context, req domain.WithdrawRequest) (bool, error) {
	for {
		value, version, _, err := s.store.Get(ctx, domain.HandlerSlotKey)
		if err != nil {
			return false, fmt.Errorf("read handler slot: %w", err)
		}

		entries, err := domain.DecodeHandlerEntries(value)
		if err != nil {
			return false, fmt.Errorf("decode handler list: %w", err)
		}

		if domain.ContainsHash(entries, req.DatabaseHash) {
			s.log.Debug().Str("hash", req.DatabaseHash).Msg("request already claimed")
			return false, nil
		}

		if len(entries) > 0 {
			entries = domain.PruneHandlerEntries(entries, s.now())
		}
		entries = append(entries, domain.HandlerEntry{
			Hash:    req.DatabaseHash,
			Process: s.process,
			Date:    s.now(),
		})

		data, err := domain.EncodeHandlerEntries(entries)
		if err != nil {
			return false, fmt.Errorf("encode handler list: %w", err)
		}

		newVersion, swapped, err := s.store.CompareAndSwap(ctx, domain.HandlerSlotKey, data, version)
		if err != nil {
			return false, fmt.Errorf("write handler slot: %w", err)
		}
		if swapped {
			s.log.Debug().
				Str("hash", req.DatabaseHash).
				Str("process", string(s.process)).
				Int64("version", newVersion).
				Msg("claimed withdraw request")
			return true, nil
		}

		// The conditioned write lost to a concurrent writer. That writer
		// may have claimed this request or an unrelated one, so re-read
		// and decide again.
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
	}
}
