package ports

import (
	"context"

	"boltcard-wallet/internal/core/domain"
)

// InvoiceDefect is the external invoice checker's classification of a
// non-payable invoice.
type InvoiceDefect string

const (
	InvoiceAlreadyPaid    InvoiceDefect = "ALREADY_PAID"
	InvoicePaymentPending InvoiceDefect = "PAYMENT_PENDING"
	InvoiceExpired        InvoiceDefect = "EXPIRED"
	InvoiceChainMismatch  InvoiceDefect = "CHAIN_MISMATCH"
	InvoiceParseError     InvoiceDefect = "PARSE_ERROR"
)

// InvoiceChecker is the external invoice-validity collaborator.
// Invoice decoding and staleness semantics are owned by it, not here.
type InvoiceChecker interface {
	// CheckForBadInvoice returns nil when the invoice is payable.
	CheckForBadInvoice(ctx context.Context, method domain.PaymentMethod) (*InvoiceDefect, error)
}

// RateProvider exposes the current exchange-rate snapshot.
type RateProvider interface {
	CurrentRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ConnectionState is one snapshot of the connection-status sequence.
type ConnectionState struct {
	PeerEstablished bool `json:"peer_established"`
}

// ChannelState is one channel's readiness within a channel-list snapshot.
type ChannelState struct {
	ChannelID    string `json:"channel_id"`
	IsTerminated bool   `json:"is_terminated"`
	IsUsable     bool   `json:"is_usable"`
}

// ConnectionsWatcher emits connection-status snapshots. The channel is
// closed when ctx is done or the underlying feed ends.
type ConnectionsWatcher interface {
	Connections(ctx context.Context) (<-chan ConnectionState, error)
}

// ChannelsWatcher emits channel-list snapshots.
type ChannelsWatcher interface {
	Channels(ctx context.Context) (<-chan []ChannelState, error)
}

// EncryptionService encrypts card key material at rest.
type EncryptionService interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(ciphertext string) ([]byte, error)
}

// SignatureService signs outgoing card responses (HMAC-SHA256).
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService validates ingress bearer tokens.
type TokenService interface {
	// Validate returns the token subject (the calling bridge identity).
	Validate(tokenString string) (string, error)
}

// CardResponse is the coarse outcome delivered back over the card's
// response channel after a withdraw decision.
type CardResponse struct {
	Hash    string `json:"hash"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResponsePoster delivers a CardResponse to the configured endpoint.
type ResponsePoster interface {
	PostResponse(ctx context.Context, resp CardResponse) error
}

// HealthChecker reports connectivity of one backing dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// WithdrawChecker is the pipeline's single public operation.
type WithdrawChecker interface {
	// CheckWithdrawRequest authenticates, authorizes, and claims one
	// withdraw request. A non-nil status with OutcomeAbortHandledElsewhere
	// is a success: a sibling process owns the payment.
	CheckWithdrawRequest(ctx context.Context, req domain.WithdrawRequest) (*domain.WithdrawStatus, error)
}
