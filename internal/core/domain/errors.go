package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when the backend answers 401. The gateway
	// has already ended the session by the time callers see it.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the backend answers 403. Like 401 it
	// forcibly ends the session.
	ErrForbidden = errors.New("access forbidden")
	// ErrBackendUnreachable wraps transport-level failures (DNS, refused
	// connection, timeout). Single attempt, no retries.
	ErrBackendUnreachable = errors.New("unable to connect to server")
)

// APIError is a logical failure reported by the backend: either an envelope
// with success=false (possibly on a 200) or a non-auth HTTP error status.
type APIError struct {
	// Status is the transport-level HTTP status of the response.
	Status int
	// MessageCodes is the ordered code list from the envelope, may be empty.
	MessageCodes []string
}

// Error returns the first message code, or a generic fallback when the
// backend supplied none.
func (e *APIError) Error() string {
	if len(e.MessageCodes) > 0 {
		return e.MessageCodes[0]
	}
	return "operation failed"
}

// IsSoftFailure reports whether the backend declared failure despite a
// transport-level success.
func (e *APIError) IsSoftFailure() bool {
	return e.Status >= 200 && e.Status < 300
}

func (e *APIError) String() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Error())
}
