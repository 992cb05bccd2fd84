package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"

	"github.com/google/uuid"
)

// CardRepo implements ports.CardRepository. The per-card AES keys are
// stored AES-256-GCM encrypted and only decrypted in memory while a
// cryptogram is being matched.
type CardRepo struct {
	pool   Pool
	crypto ports.EncryptionService
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool, crypto ports.EncryptionService) *CardRepo {
	return &CardRepo{pool: pool, crypto: crypto}
}

// ListCards returns every registered card with its keys decrypted.
func (r *CardRepo) ListCards(ctx context.Context) ([]domain.Card, error) {
	query := `SELECT id, name, picc_data_key, cmac_key, is_foreign, is_active,
		daily_limit, monthly_limit, last_known_counter, created_at, updated_at
		FROM cards ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var (
			c                    domain.Card
			piccEnc, cmacEnc     string
			dailyRaw, monthlyRaw []byte
		)
		err := rows.Scan(
			&c.ID, &c.Name, &piccEnc, &cmacEnc, &c.IsForeign, &c.IsActive,
			&dailyRaw, &monthlyRaw, &c.LastKnownCounter, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}

		if c.Keys.PiccDataKey, err = r.crypto.Decrypt(piccEnc); err != nil {
			return nil, fmt.Errorf("decrypt picc key for card %s: %w", c.ID, err)
		}
		if c.Keys.CmacKey, err = r.crypto.Decrypt(cmacEnc); err != nil {
			return nil, fmt.Errorf("decrypt cmac key for card %s: %w", c.ID, err)
		}
		if c.DailyLimit, err = decodeLimit(dailyRaw); err != nil {
			return nil, fmt.Errorf("decode daily limit for card %s: %w", c.ID, err)
		}
		if c.MonthlyLimit, err = decodeLimit(monthlyRaw); err != nil {
			return nil, fmt.Errorf("decode monthly limit for card %s: %w", c.ID, err)
		}

		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// SaveCard upserts a card, re-encrypting its key material.
func (r *CardRepo) SaveCard(ctx context.Context, c *domain.Card) error {
	piccEnc, err := r.crypto.Encrypt(c.Keys.PiccDataKey)
	if err != nil {
		return fmt.Errorf("encrypt picc key: %w", err)
	}
	cmacEnc, err := r.crypto.Encrypt(c.Keys.CmacKey)
	if err != nil {
		return fmt.Errorf("encrypt cmac key: %w", err)
	}
	dailyRaw, err := encodeLimit(c.DailyLimit)
	if err != nil {
		return fmt.Errorf("encode daily limit: %w", err)
	}
	monthlyRaw, err := encodeLimit(c.MonthlyLimit)
	if err != nil {
		return fmt.Errorf("encode monthly limit: %w", err)
	}

	query := `INSERT INTO cards (id, name, picc_data_key, cmac_key, is_foreign, is_active,
		daily_limit, monthly_limit, last_known_counter, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			picc_data_key = EXCLUDED.picc_data_key,
			cmac_key = EXCLUDED.cmac_key,
			is_foreign = EXCLUDED.is_foreign,
			is_active = EXCLUDED.is_active,
			daily_limit = EXCLUDED.daily_limit,
			monthly_limit = EXCLUDED.monthly_limit,
			last_known_counter = EXCLUDED.last_known_counter,
			updated_at = EXCLUDED.updated_at`

	_, err = r.pool.Exec(ctx, query,
		c.ID, c.Name, piccEnc, cmacEnc, c.IsForeign, c.IsActive,
		dailyRaw, monthlyRaw, c.LastKnownCounter, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save card: %w", err)
	}
	return nil
}

// ListPaymentsSince returns the card's settled payments completed at or
// after the given instant, oldest first.
func (r *CardRepo) ListPaymentsSince(ctx context.Context, cardID uuid.UUID, since time.Time) ([]domain.CardPayment, error) {
	query := `SELECT card_id, amount_msat, original_rate, completed_at
		FROM card_payments WHERE card_id = $1 AND completed_at >= $2
		ORDER BY completed_at`

	rows, err := r.pool.Query(ctx, query, cardID, since)
	if err != nil {
		return nil, fmt.Errorf("list card payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.CardPayment
	for rows.Next() {
		var (
			p       domain.CardPayment
			rateRaw []byte
		)
		if err := rows.Scan(&p.CardID, &p.AmountMsat, &rateRaw, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan card payment: %w", err)
		}
		if len(rateRaw) > 0 {
			var rate domain.ExchangeRate
			if err := json.Unmarshal(rateRaw, &rate); err != nil {
				return nil, fmt.Errorf("decode original rate: %w", err)
			}
			p.OriginalRate = &rate
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list card payments: %w", err)
	}
	return payments, nil
}

func encodeLimit(limit *domain.CurrencyAmount) ([]byte, error) {
	if limit == nil {
		return nil, nil
	}
	return json.Marshal(limit)
}

func decodeLimit(raw []byte) (*domain.CurrencyAmount, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var limit domain.CurrencyAmount
	if err := json.Unmarshal(raw, &limit); err != nil {
		return nil, err
	}
	return &limit, nil
}
