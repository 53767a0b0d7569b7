package coinbase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the exchange's failure statuses. Match with errors.Is;
// the concrete error is always an *APIError carrying the exchange message.
var (
	ErrInvalidRequest = errors.New("coinbase: invalid request")
	ErrInvalidKey     = errors.New("coinbase: invalid api key")
	ErrForbidden      = errors.New("coinbase: forbidden")
	ErrNotFound       = errors.New("coinbase: not found")
	ErrServer         = errors.New("coinbase: internal server error")
)

// APIError is a non-200 response from the exchange.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("coinbase: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == ErrInvalidRequest
	case http.StatusUnauthorized:
		return target == ErrInvalidKey
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	}
	if e.StatusCode >= http.StatusInternalServerError {
		return target == ErrServer
	}
	return false
}

// apiError builds an *APIError from a failed response body. Error bodies are
// {"message": "..."}; anything else is carried verbatim.
func apiError(status int, raw []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		payload.Message = string(raw)
	}
	return &APIError{StatusCode: status, Message: payload.Message}
}
