package service

import (
	"context"

	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"
	"boltcard-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// InvoiceGate delegates invoice validity to the external checker and
// maps its classifications onto the pipeline's error taxonomy.
type InvoiceGate struct {
	checker ports.InvoiceChecker
	log     zerolog.Logger
}

// NewInvoiceGate creates a new InvoiceGate.
func NewInvoiceGate(checker ports.InvoiceChecker, log zerolog.Logger) *InvoiceGate {
	return &InvoiceGate{checker: checker, log: log}
}

// Check returns nil when the invoice is payable.
func (g *InvoiceGate) Check(ctx context.Context, card domain.Card, method domain.PaymentMethod) error {
	defect, err := g.checker.CheckForBadInvoice(ctx, method)
	if err != nil {
		g.log.Error().Err(err).Msg("invoice checker failed")
		return apperror.InternalError(&card, "invoice validation", err)
	}
	if defect == nil {
		return nil
	}

	g.log.Debug().Str("defect", string(*defect)).Msg("invoice rejected by checker")

	switch *defect {
	case ports.InvoiceAlreadyPaid:
		return apperror.ErrAlreadyPaidInvoice(card)
	case ports.InvoicePaymentPending:
		return apperror.ErrPaymentPending(card)
	case ports.InvoiceExpired:
		return apperror.ErrBadInvoice(card, "expired")
	case ports.InvoiceChainMismatch:
		return apperror.ErrBadInvoice(card, "chain mismatch")
	default:
		return apperror.ErrBadInvoice(card, "parse error")
	}
}
