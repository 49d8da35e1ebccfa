package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/nyayai/LegalAPI/internal/metrics"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

// Caller wraps a Provider with the retry policy every call site shares:
// a bounded number of attempts, a doubling delay between them, a fixed
// per-attempt timeout, and retries only on transient failures.
type Caller struct {
	provider    Provider
	maxAttempts uint64
	baseDelay   time.Duration
	callTimeout time.Duration
	logger      *logger_i.Logger
}

type CallerConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	CallTimeout time.Duration
}

func NewCaller(provider Provider, cfg CallerConfig) *Caller {
	return &Caller{
		provider:    provider,
		maxAttempts: uint64(cfg.MaxAttempts),
		baseDelay:   cfg.BaseDelay,
		callTimeout: cfg.CallTimeout,
		logger:      logger_i.NewLogger("llm_caller"),
	}
}

func (c *Caller) Call(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	var reply string
	attempt := 0

	operation := func() error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		out, err := c.provider.Generate(attemptCtx, prompt, params)
		if err != nil {
			if !Retryable(err) {
				c.logger.Error("Model call failed, not retrying", "attempt", attempt, "error", err)
				return backoff.Permanent(err)
			}
			c.logger.Warn("Transient model failure", "attempt", attempt, "error", err)
			metrics.IncrementModelRetries()
			return err
		}
		if strings.TrimSpace(out) == "" {
			// the API can answer 200 with no candidates; treat like a 5xx
			metrics.IncrementModelRetries()
			return fmt.Errorf("%w: empty reply", ErrModelError)
		}
		reply = out
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.baseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxAttempts-1), ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", err
	}
	return reply, nil
}

// Invoke is the one parametrized entry point the classify/summarize/draft
// sites go through: build a prompt, call with retries, parse the reply.
// A parse failure is ErrMalformedReply and is never retried.
func Invoke[T any](ctx context.Context, c *Caller, build func() (string, GenerationParams), parse func(string) (T, error)) (T, error) {
	var zero T

	prompt, params := build()
	raw, err := c.Call(ctx, prompt, params)
	if err != nil {
		return zero, err
	}

	out, err := parse(raw)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return out, nil
}
