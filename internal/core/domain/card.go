package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardKeySet holds the per-card AES-128 keys: one decrypts the PICC
// payload, the other verifies the CMAC. Keys are unique per card.
type CardKeySet struct {
	PiccDataKey []byte `json:"picc_data_key"`
	CmacKey     []byte `json:"cmac_key"`
}

// Card is a locally registered contactless card.
type Card struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Keys             CardKeySet      `json:"-"` // never serialized to clients
	IsForeign        bool            `json:"is_foreign"`
	IsActive         bool            `json:"is_active"`
	DailyLimit       *CurrencyAmount `json:"daily_limit,omitempty"`
	MonthlyLimit     *CurrencyAmount `json:"monthly_limit,omitempty"`
	LastKnownCounter uint32          `json:"last_known_counter"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// WithUpdatedCounter returns a copy of the card with the anti-replay
// watermark advanced to the given counter.
func (c Card) WithUpdatedCounter(counter uint32) Card {
	c.LastKnownCounter = counter
	c.UpdatedAt = time.Now().UTC()
	return c
}

// HasSpendingLimit reports whether any daily or monthly limit is set.
func (c Card) HasSpendingLimit() bool {
	return c.DailyLimit != nil || c.MonthlyLimit != nil
}

// CardPayment is a settled outgoing payment attributed to a card.
// OriginalRate is the exchange rate observed when the payment settled;
// it should always be present but aggregation tolerates its absence.
type CardPayment struct {
	CardID       uuid.UUID     `json:"card_id"`
	AmountMsat   int64         `json:"amount_msat"`
	OriginalRate *ExchangeRate `json:"original_rate,omitempty"`
	CompletedAt  time.Time     `json:"completed_at"`
}

// AuthenticatedTagInfo is the result of successfully decrypting and
// verifying a tag cryptogram against a specific card's key set.
type AuthenticatedTagInfo struct {
	UID     []byte
	Counter uint32
}
