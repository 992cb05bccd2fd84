package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"boltcard-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResponseService implements ports.ResponsePoster. After a withdraw
// decision, the coarse outcome is posted back to the response endpoint
// so the terminal that relayed the tap can answer the card. The body is
// HMAC-signed with the endpoint's shared secret.
type ResponseService struct {
	endpoint   string
	secret     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewResponseService creates a new ResponseService.
func NewResponseService(endpoint, secret string, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *ResponseService {
	return &ResponseService{
		endpoint:   endpoint,
		secret:     secret,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
	}
}

// PostResponse delivers the card response. Delivery is best-effort from
// the pipeline's point of view: a failure is returned but the withdraw
// decision already stands.
func (s *ResponseService) PostResponse(ctx context.Context, resp ports.CardResponse) error {
	if s.endpoint == "" {
		s.log.Debug().Msg("no response endpoint configured, skipping post")
		return nil
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal card response: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build response request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", s.sigSvc.Sign(s.secret, string(body)))

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post card response: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return fmt.Errorf("response endpoint returned status %d", httpResp.StatusCode)
	}

	s.log.Info().
		Str("hash", resp.Hash).
		Str("code", resp.Code).
		Msg("card response posted")
	return nil
}
