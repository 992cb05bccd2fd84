package service

import (
	"boltcard-wallet/internal/core/domain"

	"github.com/rs/zerolog"
)

// CryptogramValidator matches an incoming tag cryptogram against the
// locally known cards by trying each card's key set in turn. The
// cryptogram carries no card identifier, and a wallet only holds a
// handful of cards, so an exhaustive key trial is the only option.
type CryptogramValidator struct {
	log zerolog.Logger
}

// NewCryptogramValidator creates a new CryptogramValidator.
func NewCryptogramValidator(log zerolog.Logger) *CryptogramValidator {
	return &CryptogramValidator{log: log}
}

// Match returns the first non-foreign card whose keys decrypt and
// authenticate the cryptogram, together with the recovered tag info.
// Both results are nil when no card matches.
func (v *CryptogramValidator) Match(cards []domain.Card, piccData, mac []byte) (*domain.Card, *domain.AuthenticatedTagInfo) {
	for i := range cards {
		card := cards[i]
		if card.IsForeign {
			// Foreign cards are managed elsewhere and cannot be used
			// for payments from this wallet.
			continue
		}

		info, err := extractPiccDataInfo(piccData, mac, card.Keys)
		if err != nil {
			v.log.Debug().Str("card_id", card.ID.String()).Err(err).Msg("card keys did not verify cryptogram")
			continue
		}

		v.log.Debug().Str("card_id", card.ID.String()).Uint32("counter", info.Counter).Msg("cryptogram matched card")
		return &card, info
	}
	return nil, nil
}
