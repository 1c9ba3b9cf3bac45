package iapi

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// Every error returned by this package matches ErrImperator with [errors.Is],
// so callers that don't care about the specific failure can check for it alone.
var ErrImperator = errors.New("imperator")

// Max amount of body bytes included in an error message.
const maxBodyInMessage = 200

// An unsuccessful response from the Imperator API.
//
// Returned as-is for status codes without a dedicated type. Every status-specific error type
// unwraps to its APIError, so `errors.As(err, &apiErr)` catches all of them at once.
type APIError struct {
	StatusCode int
	Endpoint   Endpoint
	Body       []byte
}

func (e *APIError) Error() string {
	return e.describe("unexpected response")
}

func (e *APIError) Is(target error) bool {
	return target == ErrImperator
}

func (e *APIError) describe(kind string) string {
	if e.StatusCode == 0 {
		return "imperator: " + kind
	}

	msg := fmt.Sprintf("imperator: %s (%s responded %d)", kind, e.Endpoint, e.StatusCode)
	if len(e.Body) > 0 {
		body := e.Body
		if len(body) > maxBodyInMessage {
			// Back off to a rune boundary so the message stays valid UTF-8.
			cut := maxBodyInMessage
			for cut > 0 && !utf8.RuneStart(body[cut]) {
				cut--
			}
			body = body[:cut]
		}

		msg += ": " + string(body)
	}

	return msg
}

// Remote 400, or a lookup made without any identifying parameter (StatusCode is 0 in that case).
type BadRequestError struct{ APIError }

func (e *BadRequestError) Error() string { return e.describe("bad request") }
func (e *BadRequestError) Unwrap() error { return &e.APIError }

// Remote 401 or 403. The API key is invalid or not allowed to do this.
type AuthenticationError struct{ APIError }

func (e *AuthenticationError) Error() string { return e.describe("authentication failed") }
func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// Remote 404. The entity does not exist.
type NotFoundError struct{ APIError }

func (e *NotFoundError) Error() string { return e.describe("not found") }
func (e *NotFoundError) Unwrap() error { return &e.APIError }

// Remote 429.
type RateLimitError struct{ APIError }

func (e *RateLimitError) Error() string { return e.describe("rate limited") }
func (e *RateLimitError) Unwrap() error { return &e.APIError }

// Remote 5xx.
type ServerError struct{ APIError }

func (e *ServerError) Error() string { return e.describe("server error") }
func (e *ServerError) Unwrap() error { return &e.APIError }

// The request never produced a usable response: network failure, timeout, cancellation,
// an unreadable body or a body that is not the JSON we expected.
type TransportError struct {
	Op       string // "get" or "decode"
	Endpoint Endpoint
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("imperator: %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrImperator
}

// Maps the status code of a response to one of the error types above. Returns nil for 2xx.
func errorFromStatus(endpoint Endpoint, code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}

	base := APIError{StatusCode: code, Endpoint: endpoint, Body: body}
	switch {
	case code == http.StatusBadRequest:
		return &BadRequestError{base}
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return &AuthenticationError{base}
	case code == http.StatusNotFound:
		return &NotFoundError{base}
	case code == http.StatusTooManyRequests:
		return &RateLimitError{base}
	case code >= 500 && code <= 599:
		return &ServerError{base}
	}

	return &base
}
