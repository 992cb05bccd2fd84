package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"boltcard-wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const ratesKey = "exchange_rates:current"

// RatesCache implements ports.RateProvider over a Redis snapshot. The
// wallet's rate fetcher publishes the full quote list as one JSON blob;
// this side only reads it.
type RatesCache struct {
	client *goredis.Client
}

// NewRatesCache creates a new Redis-backed rate provider.
func NewRatesCache(client *goredis.Client) *RatesCache {
	return &RatesCache{client: client}
}

// CurrentRates returns the latest exchange-rate snapshot. A missing
// snapshot is not an error here; limit evaluation decides whether the
// rate it needs is present.
func (c *RatesCache) CurrentRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	raw, err := c.client.Get(ctx, ratesKey).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis rates get: %w", err)
	}

	var rates []domain.ExchangeRate
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, fmt.Errorf("decode rates snapshot: %w", err)
	}
	return rates, nil
}

// PublishRates stores a new snapshot with a TTL so stale quotes age out
// rather than silently feeding limit checks forever.
func (c *RatesCache) PublishRates(ctx context.Context, rates []domain.ExchangeRate, ttl time.Duration) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode rates snapshot: %w", err)
	}
	if err := c.client.Set(ctx, ratesKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis rates set: %w", err)
	}
	return nil
}
