package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/kol-client/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates a full queue.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeBadGateway indicates the game server refused or failed a request.
	ErrCodeBadGateway = "bad_gateway"
	// ErrCodeUnavailable indicates a dependency or the client itself is unavailable.
	ErrCodeUnavailable = "unavailable"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeMethodNotAllowed indicates a known path called with the wrong method.
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items: at least one item with a positive count is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusMethodNotAllowed:
		return ErrCodeMethodNotAllowed
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeBadGateway
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// SellResponse reports a finished autosell or mall listing.
// @Description Result of a sell command
type SellResponse struct {
	Mode      string `json:"mode" example:"autosell"`
	Items     int    `json:"items" example:"3"`
	Meat      int    `json:"meat" example:"1500"`
	MeatDelta int    `json:"meat_delta" example:"1234"`
} // @name SellResponse

// DispatchResponse reports a queued message send.
// @Description A queued message send
type DispatchResponse struct {
	TaskID string `json:"task_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	State  string `json:"state" example:"queued"`
} // @name DispatchResponse

// ComposeResponse is the current state of the message surface.
// @Description The message being composed
type ComposeResponse struct {
	Recipient        string            `json:"recipient" example:"Jick"`
	Body             string            `json:"body" example:"Enjoy the meat!"`
	Attachments      []model.ItemStack `json:"attachments"`
	AttachmentsLabel string            `json:"attachments_label" example:"(none)"`
	Enabled          bool              `json:"enabled" example:"true"`
} // @name ComposeResponse
