package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds. Every error leaving this package unwraps to exactly one
// of these sentinels, so callers can branch with errors.Is instead of
// inspecting messages or transport details.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrUnavailable  = errors.New("service unavailable")
	ErrUnreachable  = errors.New("service unreachable")
	ErrUnknown      = errors.New("unknown api error")
)

// Error is the normalized form of any failed backend call.
type Error struct {
	kind    error
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// normalizeStatus maps an HTTP response the backend actually produced to
// the taxonomy. msg is the backend-supplied message, if any.
func normalizeStatus(status int, msg string) *Error {
	if msg == "" {
		msg = "API request failed"
	}

	switch status {
	case http.StatusBadRequest:
		return &Error{kind: ErrBadRequest, Status: status, Message: fmt.Sprintf("Bad Request: %s", msg)}
	case http.StatusUnauthorized:
		return &Error{kind: ErrUnauthorized, Status: status, Message: "Unauthorized: invalid API credentials"}
	case http.StatusNotFound:
		return &Error{kind: ErrNotFound, Status: status, Message: fmt.Sprintf("Not Found: %s", msg)}
	case http.StatusTooManyRequests:
		return &Error{kind: ErrRateLimited, Status: status, Message: "rate limit exceeded, try again later"}
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return &Error{kind: ErrUnavailable, Status: status, Message: "order service is temporarily unavailable, try again later"}
	default:
		return &Error{kind: ErrUnknown, Status: status, Message: fmt.Sprintf("API error (%d): %s", status, msg)}
	}
}

// normalizeTransport covers requests that never produced a response.
func normalizeTransport(err error) *Error {
	return &Error{
		kind:    ErrUnreachable,
		Message: fmt.Sprintf("no response from order service: %s", err),
	}
}
