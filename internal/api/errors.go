package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable wraps network-level failures: the backend could not be
// reached at all and no response was received.
var ErrUnreachable = errors.New("cannot reach server")

// ErrUnauthorized is returned when the backend rejects the credential (401)
// or when an authenticated call is attempted without a stored token. Callers
// must treat it as a re-authenticate signal, never retry silently.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is a non-401 HTTP error response. Message carries the backend's
// own `error` field verbatim when it sent one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the backend, meaning the
// record no longer exists and the caller should reload.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// ServerMessage extracts the backend-provided message from err, or returns
// the empty string when the backend sent none.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
