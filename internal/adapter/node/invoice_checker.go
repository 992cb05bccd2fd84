package node

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"boltcard-wallet/config"
	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// InvoiceChecker implements ports.InvoiceChecker against the node
// sidecar's invoice inspection endpoint. Invoice decoding, expiry and
// duplicate-payment semantics live on the node side; this adapter only
// relays the classification.
type InvoiceChecker struct {
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewInvoiceChecker creates a new node-backed invoice checker.
func NewInvoiceChecker(cfg config.NodeConfig, log zerolog.Logger) *InvoiceChecker {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &InvoiceChecker{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type checkInvoiceRequest struct {
	Kind       string `json:"kind"`
	Invoice    string `json:"invoice"`
	AmountMsat int64  `json:"amount_msat,omitempty"`
}

type checkInvoiceResponse struct {
	Payable bool   `json:"payable"`
	Defect  string `json:"defect,omitempty"`
}

// CheckForBadInvoice returns nil when the node reports the invoice
// payable, otherwise the defect classification.
func (c *InvoiceChecker) CheckForBadInvoice(ctx context.Context, method domain.PaymentMethod) (*ports.InvoiceDefect, error) {
	body, err := json.Marshal(checkInvoiceRequest{
		Kind:    string(method.Kind),
		Invoice: method.Encode(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode invoice check: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/invoices/check", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build invoice check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoice check call: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invoice check returned status %d", httpResp.StatusCode)
	}

	var resp checkInvoiceResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode invoice check response: %w", err)
	}

	if resp.Payable {
		return nil, nil
	}

	defect := classifyDefect(resp.Defect)
	c.log.Debug().Str("defect", string(defect)).Msg("node rejected invoice")
	return &defect, nil
}

func classifyDefect(raw string) ports.InvoiceDefect {
	switch ports.InvoiceDefect(raw) {
	case ports.InvoiceAlreadyPaid, ports.InvoicePaymentPending,
		ports.InvoiceExpired, ports.InvoiceChainMismatch:
		return ports.InvoiceDefect(raw)
	default:
		return ports.InvoiceParseError
	}
}
