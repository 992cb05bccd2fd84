package response

import (
	"errors"
	"net/http"
	"time"

	"boltcard-wallet/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. ErrorCode and Message
// carry the coarse card response, never internal details.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error sends an error response. A *apperror.WithdrawError is mapped to
// its card response code; anything else becomes an opaque 500.
func Error(c *gin.Context, err error) {
	var wErr *apperror.WithdrawError
	if errors.As(err, &wErr) {
		code, msg := wErr.CardResponse()
		c.JSON(httpStatusFor(wErr.Kind), ErrorResponse{
			ErrorCode: string(code),
			Message:   msg,
			RequestID: getRequestID(c),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: string(apperror.CodeInternalError),
		Message:   "internal error",
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Unauthorized sends a 401 for failed ingress authentication.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		ErrorCode: "unauthorized",
		Message:   message,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// BadRequest sends a 400 for malformed ingress payloads.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		ErrorCode: "bad_request",
		Message:   message,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func httpStatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindUnknownCard:
		return http.StatusNotFound
	case apperror.KindReplayDetected, apperror.KindFrozenCard:
		return http.StatusForbidden
	case apperror.KindDailyLimitExceeded, apperror.KindMonthlyLimitExceeded:
		return http.StatusUnprocessableEntity
	case apperror.KindBadInvoice:
		return http.StatusBadRequest
	case apperror.KindAlreadyPaidInvoice, apperror.KindPaymentPending:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
