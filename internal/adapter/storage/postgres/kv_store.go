package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// KVStore implements ports.VersionedStore on a single-table versioned
// key-value slot. Every successful write bumps the row version, so a
// compare-and-swap against a stale version fails cleanly and both the
// foreground app and the background notifier can race on the same slot.
type KVStore struct {
	pool Pool
}

// NewKVStore creates a new KVStore.
func NewKVStore(pool Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Get returns the slot's value and version. A missing key reports
// version 0 and ok=false; that version is the one to pass to
// CompareAndSwap to create the key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, int64, bool, error) {
	query := `SELECT value, version FROM app_kv WHERE key = $1`

	var (
		value   []byte
		version int64
	)
	err := s.pool.QueryRow(ctx, query, key).Scan(&value, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, false, nil
		}
		return nil, 0, false, fmt.Errorf("get kv slot: %w", err)
	}
	return value, version, true, nil
}

// CompareAndSwap writes value only if the slot is still at
// expectedVersion. Expected version 0 creates the key. Returns the new
// version and whether the swap took effect.
func (s *KVStore) CompareAndSwap(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, bool, error) {
	if expectedVersion == 0 {
		query := `INSERT INTO app_kv (key, value, version) VALUES ($1, $2, 1)
			ON CONFLICT (key) DO NOTHING`
		tag, err := s.pool.Exec(ctx, query, key, value)
		if err != nil {
			return 0, false, fmt.Errorf("insert kv slot: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return 0, false, nil
		}
		return 1, true, nil
	}

	query := `UPDATE app_kv SET value = $1, version = version + 1
		WHERE key = $2 AND version = $3`
	tag, err := s.pool.Exec(ctx, query, value, key, expectedVersion)
	if err != nil {
		return 0, false, fmt.Errorf("update kv slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, false, nil
	}
	return expectedVersion + 1, true, nil
}
