package apierror

import (
	"fmt"
	"net/http"
)

// Error is the relay's error vocabulary: every failure carries the HTTP
// status the caller will receive and a human-readable message. Components
// return it through plain error values; the handler recovers it with
// errors.As.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Unauthorized covers both a missing credential on our side and an
// upstream 401/402 rejection; the message is identical in all cases.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "API Key required")
}

func TooManyRequests() *Error {
	return New(http.StatusTooManyRequests, "Rate limit exceeded")
}

func GatewayTimeout() *Error {
	return New(http.StatusGatewayTimeout, "Request timeout")
}

func ServiceUnavailable() *Error {
	return New(http.StatusServiceUnavailable, "Connection error")
}

func UnexpectedFormat() *Error {
	return New(http.StatusInternalServerError, "Unexpected response format")
}

// Internal wraps an unclassified failure, preserving the cause in the
// message the way the relay has always reported it.
func Internal(cause error) *Error {
	return New(http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", cause))
}

// Upstream passes an unmapped non-2xx upstream status through verbatim.
func Upstream(status int) *Error {
	return New(status, fmt.Sprintf("OpenAI API error: %d", status))
}
