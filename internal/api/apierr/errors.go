package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mcoot/wordscramble/internal/model"
)

// APIError represents an API error response.
// Rejected words also carry the title and alert flag shown to the player.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Title   string `json:"title,omitempty"`
	Alert   *bool  `json:"alert,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeInvalidRootWord    = "INVALID_ROOT_WORD"
	CodeConfigurationError = "CONFIGURATION_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"

	// Word rejection codes, one per rejection reason
	CodeEmptyInput    = "EMPTY_INPUT"
	CodeAlreadyUsed   = "ALREADY_USED"
	CodeNotPossible   = "NOT_POSSIBLE"
	CodeNotReal       = "NOT_REAL"
	CodeIsStarterWord = "IS_STARTER_WORD"
	CodeTooShort      = "TOO_SHORT"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	if rej, ok := model.AsRejection(err); ok {
		alert := rej.Alert()
		message := rej.Message()
		if message == "" {
			message = rej.Error()
		}
		return &httpError{http.StatusUnprocessableEntity, APIError{
			Code:    RejectionCode(rej.Reason),
			Message: message,
			Title:   rej.Title(),
			Alert:   &alert,
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeSessionNotFound, Message: "Session not found"}}
	case errors.Is(err, model.ErrInvalidRootWord):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRootWord, Message: "Root word must be a single lowercase word"}}
	case errors.Is(err, model.ErrConfiguration):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeConfigurationError, Message: "Word lists are not loaded"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// RejectionCode returns the error code for a rejection reason
func RejectionCode(reason model.RejectionReason) string {
	return strings.ToUpper(string(reason))
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
