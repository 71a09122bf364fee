package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// StatusError captures a non-2xx upstream response surfaced as an error.
type StatusError struct {
	Source     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Source, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// DecodeError marks a malformed upstream body. Decode failures are never
// retried; the payload will not become well-formed on a second attempt.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsRetryable reports whether a fetch failure qualifies for a retry:
// aborted/timed-out attempts and HTTP status failures do, decode failures
// do not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return false
	}

	if _, ok := AsStatusError(err); ok {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}

	return false
}
