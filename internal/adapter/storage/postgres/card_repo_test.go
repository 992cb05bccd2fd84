package postgres

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"boltcard-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hexCrypto is a deterministic stand-in for the AES-GCM service so
// query arguments stay predictable.
type hexCrypto struct{}

func (hexCrypto) Encrypt(plaintext []byte) (string, error) {
	return "enc:" + hex.EncodeToString(plaintext), nil
}

func (hexCrypto) Decrypt(ciphertext string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(ciphertext, "enc:"))
}

func newTestCard() *domain.Card {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Card{
		ID:   uuid.New(),
		Name: "wallet card",
		Keys: domain.CardKeySet{
			PiccDataKey: []byte{0x01, 0x02, 0x03, 0x04},
			CmacKey:     []byte{0x05, 0x06, 0x07, 0x08},
		},
		IsActive:         true,
		LastKnownCounter: 12,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func cardColumns() []string {
	return []string{"id", "name", "picc_data_key", "cmac_key", "is_foreign", "is_active",
		"daily_limit", "monthly_limit", "last_known_counter", "created_at", "updated_at"}
}

func cardRow(t *testing.T, c *domain.Card) *pgxmock.Rows {
	t.Helper()
	crypto := hexCrypto{}
	piccEnc, err := crypto.Encrypt(c.Keys.PiccDataKey)
	require.NoError(t, err)
	cmacEnc, err := crypto.Encrypt(c.Keys.CmacKey)
	require.NoError(t, err)
	dailyRaw, err := encodeLimit(c.DailyLimit)
	require.NoError(t, err)
	monthlyRaw, err := encodeLimit(c.MonthlyLimit)
	require.NoError(t, err)

	return pgxmock.NewRows(cardColumns()).AddRow(
		c.ID, c.Name, piccEnc, cmacEnc, c.IsForeign, c.IsActive,
		dailyRaw, monthlyRaw, c.LastKnownCounter, c.CreatedAt, c.UpdatedAt,
	)
}

func TestCardRepo_ListCards(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock, hexCrypto{})
	c := newTestCard()
	c.DailyLimit = &domain.CurrencyAmount{
		Currency: domain.Currency{FiatCode: "EUR"},
		Amount:   50,
	}

	mock.ExpectQuery("SELECT .+ FROM cards").
		WillReturnRows(cardRow(t, c))

	cards, err := repo.ListCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, c.ID, cards[0].ID)
	assert.Equal(t, c.Keys.PiccDataKey, cards[0].Keys.PiccDataKey, "keys come back decrypted")
	assert.Equal(t, c.Keys.CmacKey, cards[0].Keys.CmacKey)
	require.NotNil(t, cards[0].DailyLimit)
	assert.Equal(t, "EUR", cards[0].DailyLimit.Currency.FiatCode)
	assert.Nil(t, cards[0].MonthlyLimit)
	assert.Equal(t, uint32(12), cards[0].LastKnownCounter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_ListCards_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock, hexCrypto{})
	mock.ExpectQuery("SELECT .+ FROM cards").
		WillReturnRows(pgxmock.NewRows(cardColumns()))

	cards, err := repo.ListCards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_SaveCard(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock, hexCrypto{})
	c := newTestCard()

	mock.ExpectExec("INSERT INTO cards").
		WithArgs(c.ID, c.Name, "enc:01020304", "enc:05060708", c.IsForeign, c.IsActive,
			[]byte(nil), []byte(nil), c.LastKnownCounter, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.SaveCard(context.Background(), c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepo_ListPaymentsSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCardRepo(mock, hexCrypto{})
	cardID := uuid.New()
	since := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Microsecond)
	completed := since.Add(2 * time.Hour)

	rate := domain.ExchangeRate{FiatCode: "EUR", Price: 95_000, Timestamp: completed}
	rateRaw, err := json.Marshal(rate)
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{"card_id", "amount_msat", "original_rate", "completed_at"}).
		AddRow(cardID, int64(25_000), rateRaw, completed).
		AddRow(cardID, int64(10_000), []byte(nil), completed.Add(time.Hour))

	mock.ExpectQuery("SELECT .+ FROM card_payments").
		WithArgs(cardID, since).
		WillReturnRows(rows)

	payments, err := repo.ListPaymentsSince(context.Background(), cardID, since)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	require.NotNil(t, payments[0].OriginalRate)
	assert.Equal(t, "EUR", payments[0].OriginalRate.FiatCode)
	assert.InDelta(t, 95_000, payments[0].OriginalRate.Price, 1e-9)
	assert.Nil(t, payments[1].OriginalRate, "a missing original rate is tolerated")
	assert.NoError(t, mock.ExpectationsWereMet())
}
