package service

import (
	"context"

	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"
	"boltcard-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// WithdrawService sequences the full card-withdrawal pipeline:
// cryptogram match, replay guard, frozen-card check, spending limits,
// invoice validity, network readiness, and the at-most-once claim.
// It short-circuits on the first failure.
type WithdrawService struct {
	cardRepo   ports.CardRepository
	validator  *CryptogramValidator
	limits     *LimitEvaluator
	invoices   *InvoiceGate
	readiness  *ReadinessWaiter
	settlement *SettlementCoordinator
	log        zerolog.Logger
}

// NewWithdrawService creates a new WithdrawService.
func NewWithdrawService(
	cardRepo ports.CardRepository,
	validator *CryptogramValidator,
	limits *LimitEvaluator,
	invoices *InvoiceGate,
	readiness *ReadinessWaiter,
	settlement *SettlementCoordinator,
	log zerolog.Logger,
) *WithdrawService {
	return &WithdrawService{
		cardRepo:   cardRepo,
		validator:  validator,
		limits:     limits,
		invoices:   invoices,
		readiness:  readiness,
		settlement: settlement,
		log:        log,
	}
}

// CheckWithdrawRequest evaluates one withdraw request end to end.
// On success the status says either "pay it" or "a sibling process owns
// it". Every error is terminal for this request and is returned, never
// panicked or retried.
func (s *WithdrawService) CheckWithdrawRequest(ctx context.Context, req domain.WithdrawRequest) (*domain.WithdrawStatus, error) {
	// Step 1: decrypt the PICC data and verify the cmac. The cryptogram
	// carries no card identifier, so each known card's keys are tried.
	cards, err := s.cardRepo.ListCards(ctx)
	if err != nil {
		return nil, apperror.InternalError(nil, "card database unavailable", err)
	}
	s.log.Debug().Int("cards", len(cards)).Msg("matching cryptogram")

	card, tag := s.validator.Match(cards, req.PiccData, req.Cmac)
	if card == nil {
		return nil, apperror.ErrUnknownCard()
	}

	// Step 2: the counter must be strictly greater than the stored
	// watermark; equal or smaller means a captured tap being replayed.
	if tag.Counter <= card.LastKnownCounter {
		return nil, apperror.ErrReplayDetected(*card)
	}

	// From this point on the observed counter is persisted no matter
	// how policy turns out, since the tap itself was cryptographically
	// genuine. The exception is when a sibling process owns the claim,
	// in which case that process updates the card and we must not race it.
	finish := func(status *domain.WithdrawStatus, pipeErr error) (*domain.WithdrawStatus, error) {
		skipUpdate := status != nil && status.Outcome == domain.OutcomeAbortHandledElsewhere
		if !skipUpdate {
			updated := card.WithUpdatedCounter(tag.Counter)
			if saveErr := s.cardRepo.SaveCard(ctx, &updated); saveErr != nil {
				s.log.Error().Err(saveErr).Str("card_id", card.ID.String()).Msg("failed to persist updated counter")
			}
		}
		return status, pipeErr
	}

	// Step 3: frozen cards still advance the counter but never pay.
	if !card.IsActive {
		s.log.Debug().Str("card_id", card.ID.String()).Msg("card is frozen")
		return finish(nil, apperror.ErrFrozenCard(*card))
	}

	// Step 4: daily/monthly spending limits.
	if err := s.limits.CheckSpendingLimits(ctx, *card, req.AmountMsat); err != nil {
		return finish(nil, err)
	}

	// Step 5: invoice validity (expired, chain mismatch, already paid,
	// payment pending) is owned by the external checker.
	if err := s.invoices.Check(ctx, *card, req.Method); err != nil {
		return finish(nil, err)
	}

	// Step 6: wait for the peer connection and channel readiness. Only
	// one process can hold the peer connection at a time, which is why
	// this must happen before the claim below.
	if err := s.readiness.WaitUntilReady(ctx); err != nil {
		return finish(nil, apperror.InternalError(card, "waiting for network readiness", err))
	}

	// Step 7: atomically decide WHO pays. Both the foreground app and
	// the background notifier may have received this same request; the
	// compare-and-swap claim ensures the invoice is paid exactly once.
	wonClaim, err := s.settlement.TryMarkHandled(ctx, req)
	if err != nil {
		return finish(nil, apperror.InternalError(card, "claiming withdraw request", err))
	}

	if wonClaim {
		return finish(&domain.WithdrawStatus{
			Outcome:    domain.OutcomeContinueAndSendPayment,
			Card:       *card,
			Method:     req.Method,
			AmountMsat: req.AmountMsat,
		}, nil)
	}
	return finish(&domain.WithdrawStatus{
		Outcome: domain.OutcomeAbortHandledElsewhere,
		Card:    *card,
	}, nil)
}
