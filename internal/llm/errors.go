package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrRateLimited    = errors.New("model rate limited")
	ErrTimeout        = errors.New("model call timed out")
	ErrModelError     = errors.New("model error")
	ErrMalformedReply = errors.New("malformed model reply")
)

// StatusError keeps the upstream HTTP status so Retryable can tell a
// transient 429/5xx apart from a malformed-request 4xx.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d: %v", e.Code, e.Err) }
func (e *StatusError) Unwrap() error { return e.Err }

// FromStatus wraps a provider error into the taxonomy based on its HTTP code.
func FromStatus(code int, err error) error {
	switch {
	case code == http.StatusTooManyRequests:
		return &StatusError{Code: code, Err: fmt.Errorf("%w: %v", ErrRateLimited, err)}
	default:
		return &StatusError{Code: code, Err: fmt.Errorf("%w: %v", ErrModelError, err)}
	}
}

// Retryable reports whether another attempt is worth making: rate limits,
// 5xx, timeouts and connection-level failures are transient; any other 4xx
// is a malformed request and fails on the first attempt.
func Retryable(err error) bool {
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.ResourceExhausted, codes.Unavailable, codes.DeadlineExceeded:
			return true
		}
	}
	return false
}
