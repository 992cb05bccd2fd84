package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// PaymentMethodKind is the wire format of the requested invoice.
type PaymentMethodKind string

const (
	PaymentMethodBolt11 PaymentMethodKind = "bolt11"
	PaymentMethodBolt12 PaymentMethodKind = "bolt12"
)

// PaymentMethod is the Lightning invoice a card tap asks us to pay.
// Invoice is the serialized form as received; decoding and validity
// semantics are owned by the external invoice checker.
type PaymentMethod struct {
	Kind    PaymentMethodKind `json:"kind"`
	Invoice string            `json:"invoice"`
}

// Encode returns the serialized invoice.
func (m PaymentMethod) Encode() string { return m.Invoice }

// WithdrawRequest is the unit of work: one card tap asking to pay one
// invoice for one amount.
type WithdrawRequest struct {
	PiccData   []byte
	Cmac       []byte
	Method     PaymentMethod
	AmountMsat int64

	// DatabaseHash is a deterministic digest over the request inputs,
	// used as the idempotency key for at-most-once settlement. It is
	// not a nonce: identical inputs always produce the identical hash.
	DatabaseHash string
}

// NewWithdrawRequest builds a request and derives its database hash.
func NewWithdrawRequest(piccData, cmac []byte, method PaymentMethod, amountMsat int64) WithdrawRequest {
	return WithdrawRequest{
		PiccData:     piccData,
		Cmac:         cmac,
		Method:       method,
		AmountMsat:   amountMsat,
		DatabaseHash: calculateDatabaseHash(piccData, cmac, method, amountMsat),
	}
}

func calculateDatabaseHash(piccData, cmac []byte, method PaymentMethod, amountMsat int64) string {
	h := sha256.New()
	h.Write([]byte(hex.EncodeToString(piccData)))
	h.Write([]byte(hex.EncodeToString(cmac)))
	h.Write([]byte(method.Encode()))
	h.Write([]byte(strconv.FormatInt(amountMsat, 10)))
	return hex.EncodeToString(h.Sum(nil))
}

// WithdrawOutcome is the terminal disposition of a successful check.
type WithdrawOutcome string

const (
	// OutcomeContinueAndSendPayment means this process won the claim
	// and must pay the invoice.
	OutcomeContinueAndSendPayment WithdrawOutcome = "CONTINUE_AND_SEND_PAYMENT"
	// OutcomeAbortHandledElsewhere means a sibling process owns the
	// claim. Not an error: the request is being handled, just not here.
	OutcomeAbortHandledElsewhere WithdrawOutcome = "ABORT_HANDLED_ELSEWHERE"
)

// WithdrawStatus is the success result of CheckWithdrawRequest.
type WithdrawStatus struct {
	Outcome    WithdrawOutcome
	Card       Card
	Method     PaymentMethod
	AmountMsat int64
}
