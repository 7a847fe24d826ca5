package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrSessionExpired matches an [*HTTPError] after which the local
	// session was cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidJSON is returned when a response declares a JSON content
	// type but its body does not parse.
	ErrInvalidJSON = errors.New("invalid json response")

	// ErrNotJSON is returned by [Result.Decode] for non-JSON results.
	ErrNotJSON = errors.New("response is not json")
)

// HTTPError is returned by [FetchClient.Do] for every non-2xx response.
type HTTPError struct {
	StatusCode int
	// Status is the reason phrase, e.g. "Unauthorized".
	Status string
	// Body is the response text, empty when it could not be read.
	Body string
	// SessionExpired reports that the response cleared the local session.
	SessionExpired bool
}

// Error formats as "HTTP <code>: <text>", using the reason phrase when the
// body is empty.
func (e *HTTPError) Error() string {
	text := e.Body
	if text == "" {
		text = e.Status
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, text)
}

// Is matches the status sentinel of the code and, for expired sessions,
// [ErrSessionExpired].
func (e *HTTPError) Is(target error) bool {
	if target == ErrSessionExpired {
		return e.SessionExpired
	}
	sentinel := mapHTTPStatus(e.StatusCode)
	return sentinel != nil && target == sentinel
}
