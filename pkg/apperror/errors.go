package apperror

import (
	"fmt"

	"boltcard-wallet/internal/core/domain"
)

// Kind classifies a withdraw-request failure. Every kind is terminal
// for the request being evaluated; nothing is retried automatically.
type Kind string

const (
	KindUnknownCard          Kind = "UNKNOWN_CARD"
	KindReplayDetected       Kind = "REPLAY_DETECTED"
	KindFrozenCard           Kind = "FROZEN_CARD"
	KindDailyLimitExceeded   Kind = "DAILY_LIMIT_EXCEEDED"
	KindMonthlyLimitExceeded Kind = "MONTHLY_LIMIT_EXCEEDED"
	KindBadInvoice           Kind = "BAD_INVOICE"
	KindAlreadyPaidInvoice   Kind = "ALREADY_PAID_INVOICE"
	KindPaymentPending       Kind = "PAYMENT_PENDING"
	KindInternalError        Kind = "INTERNAL_ERROR"
)

// CardResponseCode is the coarse code delivered back over the card's
// response channel. Daily and monthly limit violations share one code
// so the response does not disclose which limit was hit.
type CardResponseCode string

const (
	CodeUnknownCard        CardResponseCode = "unknown_card"
	CodeReplayDetected     CardResponseCode = "replay_detected"
	CodeFrozenCard         CardResponseCode = "frozen_card"
	CodeLimitExceeded      CardResponseCode = "limit_exceeded"
	CodeBadInvoice         CardResponseCode = "bad_invoice"
	CodeAlreadyPaidInvoice CardResponseCode = "already_paid_invoice"
	CodePaymentPending     CardResponseCode = "payment_pending"
	CodeInternalError      CardResponseCode = "internal_error"
)

// WithdrawError is a structured, terminal withdraw-request error.
type WithdrawError struct {
	Kind    Kind
	Card    *domain.Card           // matched card, nil before a match exists
	Amount  *domain.CurrencyAmount // offending amount for limit violations
	Details string                 // bad-invoice / internal-error detail
	Err     error                  // wrapped internal cause (never exposed to the card)
}

func (e *WithdrawError) Error() string {
	switch {
	case e.Details != "" && e.Err != nil:
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Details, e.Err)
	case e.Details != "":
		return fmt.Sprintf("[%s] %s", e.Kind, e.Details)
	case e.Err != nil:
		return fmt.Sprintf("[%s] %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("[%s]", e.Kind)
	}
}

func (e *WithdrawError) Unwrap() error {
	return e.Err
}

// CardResponse maps the error onto the coarse code and message sent
// back to the card. Internal-error details are deliberately hidden.
func (e *WithdrawError) CardResponse() (CardResponseCode, string) {
	switch e.Kind {
	case KindUnknownCard:
		return CodeUnknownCard, "unknown card"
	case KindReplayDetected:
		return CodeReplayDetected, "replay detected"
	case KindFrozenCard:
		return CodeFrozenCard, "frozen card"
	case KindDailyLimitExceeded, KindMonthlyLimitExceeded:
		return CodeLimitExceeded, "limit exceeded"
	case KindBadInvoice:
		return CodeBadInvoice, fmt.Sprintf("bad invoice: %s", e.Details)
	case KindAlreadyPaidInvoice:
		return CodeAlreadyPaidInvoice, "already paid invoice"
	case KindPaymentPending:
		return CodePaymentPending, "payment pending"
	default:
		return CodeInternalError, "internal error"
	}
}

func ErrUnknownCard() *WithdrawError {
	return &WithdrawError{Kind: KindUnknownCard}
}

func ErrReplayDetected(card domain.Card) *WithdrawError {
	return &WithdrawError{Kind: KindReplayDetected, Card: &card}
}

func ErrFrozenCard(card domain.Card) *WithdrawError {
	return &WithdrawError{Kind: KindFrozenCard, Card: &card}
}

func ErrDailyLimitExceeded(card domain.Card, amount domain.CurrencyAmount) *WithdrawError {
	return &WithdrawError{Kind: KindDailyLimitExceeded, Card: &card, Amount: &amount}
}

func ErrMonthlyLimitExceeded(card domain.Card, amount domain.CurrencyAmount) *WithdrawError {
	return &WithdrawError{Kind: KindMonthlyLimitExceeded, Card: &card, Amount: &amount}
}

func ErrBadInvoice(card domain.Card, details string) *WithdrawError {
	return &WithdrawError{Kind: KindBadInvoice, Card: &card, Details: details}
}

func ErrAlreadyPaidInvoice(card domain.Card) *WithdrawError {
	return &WithdrawError{Kind: KindAlreadyPaidInvoice, Card: &card}
}

func ErrPaymentPending(card domain.Card) *WithdrawError {
	return &WithdrawError{Kind: KindPaymentPending, Card: &card}
}

// InternalError wraps an unexpected collaborator or I/O failure.
// Used for missing exchange rates, database unavailability, and any
// unexpected error escaping a collaborator boundary.
func InternalError(card *domain.Card, details string, err error) *WithdrawError {
	return &WithdrawError{Kind: KindInternalError, Card: card, Details: details, Err: err}
}
