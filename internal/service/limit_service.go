package service

import (
	"context"
	"time"

	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"
	"boltcard-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// LimitEvaluator aggregates a card's historical payments into rolling
// daily and monthly spend and compares them against the card's
// configured limits.
type LimitEvaluator struct {
	cardRepo ports.CardRepository
	rates    ports.RateProvider
	log      zerolog.Logger
	now      func() time.Time
}

// NewLimitEvaluator creates a new LimitEvaluator.
func NewLimitEvaluator(cardRepo ports.CardRepository, rates ports.RateProvider, log zerolog.Logger) *LimitEvaluator {
	return &LimitEvaluator{
		cardRepo: cardRepo,
		rates:    rates,
		log:      log,
		now:      time.Now,
	}
}

// CheckSpendingLimits verifies the requested amount against the card's
// daily and monthly limits. A request that brings cumulative spend to
// exactly a limit passes; anything over fails. Returns nil when the
// card has no limits or both checks pass.
func (s *LimitEvaluator) CheckSpendingLimits(ctx context.Context, card domain.Card, amountMsat int64) error {
	if !card.HasSpendingLimit() {
		return nil
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthly, err := s.cardRepo.ListPaymentsSince(ctx, card.ID, startOfMonth)
	if err != nil {
		return apperror.InternalError(&card, "checking spending limits", err)
	}
	var daily []domain.CardPayment
	for _, p := range monthly {
		if !p.CompletedAt.Before(startOfDay) {
			daily = append(daily, p)
		}
	}

	// A missing exchange rate is a hard internal error, not a policy
	// rejection, so rates are only fetched when a fiat limit exists.
	var rates []domain.ExchangeRate
	if (card.DailyLimit != nil && card.DailyLimit.Currency.IsFiat()) ||
		(card.MonthlyLimit != nil && card.MonthlyLimit.Currency.IsFiat()) {
		rates, err = s.rates.CurrentRates(ctx)
		if err != nil {
			return apperror.InternalError(&card, "fetching exchange rates", err)
		}
	}

	if card.DailyLimit != nil {
		if err := s.checkWindow(card, daily, *card.DailyLimit, amountMsat, rates, true); err != nil {
			return err
		}
	}
	if card.MonthlyLimit != nil {
		if err := s.checkWindow(card, monthly, *card.MonthlyLimit, amountMsat, rates, false); err != nil {
			return err
		}
	}
	return nil
}

func (s *LimitEvaluator) checkWindow(
	card domain.Card,
	payments []domain.CardPayment,
	limit domain.CurrencyAmount,
	amountMsat int64,
	rates []domain.ExchangeRate,
	daily bool,
) error {
	if limit.Currency.IsBitcoin() {
		unit := limit.Currency.BitcoinUnit
		limitMsat := domain.ToMsat(limit.Amount, unit)

		var prevMsat int64
		for _, p := range payments {
			prevMsat += p.AmountMsat
		}
		newMsat := prevMsat + amountMsat

		s.log.Debug().
			Bool("daily", daily).
			Int64("prev_msat", prevMsat).
			Int64("invoice_msat", amountMsat).
			Int64("limit_msat", limitMsat).
			Msg("spending limit check")

		if newMsat > limitMsat {
			amount := domain.CurrencyAmount{
				Currency: limit.Currency,
				Amount:   domain.ConvertBitcoin(amountMsat, unit),
			}
			if daily {
				return apperror.ErrDailyLimitExceeded(card, amount)
			}
			return apperror.ErrMonthlyLimitExceeded(card, amount)
		}
		return nil
	}

	rate := domain.RateFor(limit.Currency.FiatCode, rates)
	if rate == nil {
		return apperror.InternalError(&card, "missing exchange rate", nil)
	}

	invoiceFiat := domain.ConvertToFiat(amountMsat, *rate)
	prevFiat := fiatSpend(payments, limit.Currency.FiatCode, rates)
	newFiat := prevFiat + invoiceFiat

	s.log.Debug().
		Bool("daily", daily).
		Float64("prev_fiat", prevFiat).
		Float64("invoice_fiat", invoiceFiat).
		Float64("limit_fiat", limit.Amount).
		Str("fiat", limit.Currency.FiatCode).
		Msg("spending limit check")

	if newFiat > limit.Amount {
		amount := domain.CurrencyAmount{Currency: limit.Currency, Amount: invoiceFiat}
		if daily {
			return apperror.ErrDailyLimitExceeded(card, amount)
		}
		return apperror.ErrMonthlyLimitExceeded(card, amount)
	}
	return nil
}

// fiatSpend sums the fiat value of historical payments in the target
// currency. Each payment's stored original rate is preferred: it is the
// value the user actually saw when the payment settled. When that rate
// is in a different fiat, it is scaled across via the current rates;
// with no original rate at all, the current target rate is used.
func fiatSpend(payments []domain.CardPayment, targetFiat string, rates []domain.ExchangeRate) float64 {
	currentDst := domain.RateFor(targetFiat, rates)

	var total float64
	for _, p := range payments {
		var amt float64
		if orig := p.OriginalRate; orig != nil {
			if orig.FiatCode == targetFiat {
				amt = domain.ConvertToFiat(p.AmountMsat, *orig)
			} else {
				origAmt := domain.ConvertToFiat(p.AmountMsat, *orig)
				currentSrc := domain.RateFor(orig.FiatCode, rates)
				if currentSrc != nil && currentDst != nil {
					amt = origAmt * (currentDst.Price / currentSrc.Price)
				}
			}
		}
		if amt == 0 && currentDst != nil {
			amt = domain.ConvertToFiat(p.AmountMsat, *currentDst)
		}
		total += amt
	}
	return total
}
