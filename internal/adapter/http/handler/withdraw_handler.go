package handler

import (
	"context"
	"errors"

	"boltcard-wallet/internal/adapter/http/dto"
	"boltcard-wallet/internal/core/domain"
	"boltcard-wallet/internal/core/ports"
	"boltcard-wallet/pkg/apperror"
	"boltcard-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WithdrawHandler handles the withdraw-request ingress.
type WithdrawHandler struct {
	checker   ports.WithdrawChecker
	responses ports.ResponsePoster
	log       zerolog.Logger
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(checker ports.WithdrawChecker, responses ports.ResponsePoster, log zerolog.Logger) *WithdrawHandler {
	return &WithdrawHandler{checker: checker, responses: responses, log: log}
}

// Create handles POST /api/v1/withdrawals. The pipeline decision is
// returned to the bridge and, independently, posted back over the
// card's response channel.
func (h *WithdrawHandler) Create(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, err := h.checker.CheckWithdrawRequest(c.Request.Context(), domainReq)
	if err != nil {
		h.postErrorResponse(c.Request.Context(), domainReq, err)
		response.Error(c, err)
		return
	}

	h.postOutcomeResponse(c.Request.Context(), domainReq, status)
	response.OK(c, dto.WithdrawResponse{
		Outcome:    string(status.Outcome),
		CardID:     status.Card.ID.String(),
		CardName:   status.Card.Name,
		AmountMsat: status.AmountMsat,
		Hash:       domainReq.DatabaseHash,
	})
}

func (h *WithdrawHandler) postErrorResponse(ctx context.Context, req domain.WithdrawRequest, err error) {
	var wErr *apperror.WithdrawError
	if !errors.As(err, &wErr) {
		return
	}
	code, msg := wErr.CardResponse()
	h.post(ctx, ports.CardResponse{Hash: req.DatabaseHash, Code: string(code), Message: msg})
}

func (h *WithdrawHandler) postOutcomeResponse(ctx context.Context, req domain.WithdrawRequest, status *domain.WithdrawStatus) {
	// Only the process that owns the claim answers the card; the losing
	// process staying silent avoids a duplicate response.
	if status.Outcome != domain.OutcomeContinueAndSendPayment {
		return
	}
	h.post(ctx, ports.CardResponse{Hash: req.DatabaseHash, Code: "ok", Message: "payment on the way"})
}

func (h *WithdrawHandler) post(ctx context.Context, resp ports.CardResponse) {
	// Best-effort: the decision stands whether or not the response
	// endpoint is reachable.
	if err := h.responses.PostResponse(ctx, resp); err != nil {
		h.log.Warn().Err(err).Str("hash", resp.Hash).Msg("failed to post card response")
	}
}
