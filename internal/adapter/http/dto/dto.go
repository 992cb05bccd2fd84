package dto

import (
	"encoding/hex"
	"fmt"

	"boltcard-wallet/internal/core/domain"
)

// WithdrawRequest is the request body for POST /api/v1/withdrawals.
// The bridge relays the raw tap cryptogram hex-encoded; decoding and
// verification happen inside the pipeline, never here.
type WithdrawRequest struct {
	PiccData   string        `json:"picc_data" binding:"required,hexblob"`
	Cmac       string        `json:"cmac" binding:"required,hexblob"`
	Method     PaymentMethod `json:"method" binding:"required"`
	AmountMsat int64         `json:"amount_msat" binding:"required,gt=0"`
}

// PaymentMethod mirrors the invoice the card tap asks to pay.
type PaymentMethod struct {
	Kind    string `json:"kind" binding:"required,oneof=bolt11 bolt12"`
	Invoice string `json:"invoice" binding:"required"`
}

// ToDomain decodes the hex fields and derives the request hash.
func (r WithdrawRequest) ToDomain() (domain.WithdrawRequest, error) {
	piccData, err := hex.DecodeString(r.PiccData)
	if err != nil {
		return domain.WithdrawRequest{}, fmt.Errorf("invalid picc_data hex: %w", err)
	}
	cmac, err := hex.DecodeString(r.Cmac)
	if err != nil {
		return domain.WithdrawRequest{}, fmt.Errorf("invalid cmac hex: %w", err)
	}

	return domain.NewWithdrawRequest(piccData, cmac, domain.PaymentMethod{
		Kind:    domain.PaymentMethodKind(r.Method.Kind),
		Invoice: r.Method.Invoice,
	}, r.AmountMsat), nil
}

// WithdrawResponse is the response body for a completed check.
type WithdrawResponse struct {
	Outcome    string `json:"outcome"`
	CardID     string `json:"card_id"`
	CardName   string `json:"card_name,omitempty"`
	AmountMsat int64  `json:"amount_msat,omitempty"`
	Hash       string `json:"hash"`
}

// HealthResponse reports the state of each backing dependency.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}
