package node

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boltcard-wallet/config"
	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckerAgainst(t *testing.T, handler http.HandlerFunc) *InvoiceChecker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewInvoiceChecker(config.NodeConfig{Endpoint: srv.URL, Timeout: time.Second}, zerolog.Nop())
}

func TestInvoiceChecker_PayableInvoice(t *testing.T) {
	checker := newCheckerAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/invoices/check", r.URL.Path)

		var req checkInvoiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "bolt11", req.Kind)
		assert.Equal(t, "lnbc1invoice", req.Invoice)

		json.NewEncoder(w).Encode(checkInvoiceResponse{Payable: true})
	})

	defect, err := checker.CheckForBadInvoice(context.Background(),
		domain.PaymentMethod{Kind: domain.PaymentMethodBolt11, Invoice: "lnbc1invoice"})
	require.NoError(t, err)
	assert.Nil(t, defect)
}

func TestInvoiceChecker_KnownDefects(t *testing.T) {
	for _, want := range []ports.InvoiceDefect{
		ports.InvoiceAlreadyPaid,
		ports.InvoicePaymentPending,
		ports.InvoiceExpired,
		ports.InvoiceChainMismatch,
	} {
		t.Run(string(want), func(t *testing.T) {
			checker := newCheckerAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
				json.NewEncoder(w).Encode(checkInvoiceResponse{Defect: string(want)})
			})

			defect, err := checker.CheckForBadInvoice(context.Background(),
				domain.PaymentMethod{Kind: domain.PaymentMethodBolt11, Invoice: "lnbc1invoice"})
			require.NoError(t, err)
			require.NotNil(t, defect)
			assert.Equal(t, want, *defect)
		})
	}
}

func TestInvoiceChecker_UnknownDefectIsParseError(t *testing.T) {
	checker := newCheckerAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(checkInvoiceResponse{Defect: "SOMETHING_NEW"})
	})

	defect, err := checker.CheckForBadInvoice(context.Background(),
		domain.PaymentMethod{Kind: domain.PaymentMethodBolt12, Invoice: "lno1offer"})
	require.NoError(t, err)
	require.NotNil(t, defect)
	assert.Equal(t, ports.InvoiceParseError, *defect)
}

func TestInvoiceChecker_NodeError(t *testing.T) {
	checker := newCheckerAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := checker.CheckForBadInvoice(context.Background(),
		domain.PaymentMethod{Kind: domain.PaymentMethodBolt11, Invoice: "lnbc1invoice"})
	assert.ErrorContains(t, err, "502")
}

func TestInvoiceChecker_NodeUnreachable(t *testing.T) {
	checker := NewInvoiceChecker(config.NodeConfig{Endpoint: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond}, zerolog.Nop())

	_, err := checker.CheckForBadInvoice(context.Background(),
		domain.PaymentMethod{Kind: domain.PaymentMethodBolt11, Invoice: "lnbc1invoice"})
	assert.Error(t, err)
}
