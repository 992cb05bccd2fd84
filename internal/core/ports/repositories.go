package ports

import (
	"context"
	"time"

	"boltcard-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// CardRepository defines persistence operations for the card registry
// and the per-card payment history.
type CardRepository interface {
	// ListCards returns every locally registered card, foreign ones included.
	ListCards(ctx context.Context) ([]domain.Card, error)
	// SaveCard inserts a new card or updates an existing one.
	SaveCard(ctx context.Context, card *domain.Card) error
	// ListPaymentsSince returns the card's settled payments completed at or
	// after the given instant, newest window first not required.
	ListPaymentsSince(ctx context.Context, cardID uuid.UUID, since time.Time) ([]domain.CardPayment, error)
}

// VersionedStore is a shared key-value slot with optimistic concurrency.
// It is the only synchronization point between the foreground and the
// background process; no locks are held across Get and CompareAndSwap.
type VersionedStore interface {
	// Get returns the current value and its version token.
	// ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, version int64, ok bool, err error)
	// CompareAndSwap replaces the value only if the stored version still
	// equals expectedVersion (0 for an absent key). Returns the new version
	// and whether the write was applied; a stale expectedVersion yields
	// swapped=false without error.
	CompareAndSwap(ctx context.Context, key string, value []byte, expectedVersion int64) (newVersion int64, swapped bool, err error)
}
