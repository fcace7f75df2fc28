package provider

import (
	"context"
	"log"
	"time"
)

// retrying wraps a Provider with a bounded retry policy: each call gets
// its own wall-clock timeout, failures are retried with linear backoff,
// and exhaustion surfaces as ModelUnavailableError.
type retrying struct {
	inner   Provider
	retries int
	backoff time.Duration
	timeout time.Duration
	logger  *log.Logger
}

// WithRetry returns a Provider that retries transient failures of the
// wrapped provider up to retries additional attempts. Run-level
// cancellation is not retried.
func WithRetry(p Provider, retries int, backoff, timeout time.Duration, logger *log.Logger) Provider {
	if retries < 0 {
		retries = 0
	}
	if backoff <= 0 {
		backoff = 5 * time.Second
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &retrying{inner: p, retries: retries, backoff: backoff, timeout: timeout, logger: logger}
}

func (r *retrying) Model() string { return r.inner.Model() }

func (r *retrying) Generate(ctx context.Context, systemPrompt, userContent string) (string, error) {
	tries := r.retries + 1
	var last error
	for attempt := 1; attempt <= tries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		out, err := r.inner.Generate(callCtx, systemPrompt, userContent)
		cancel()
		if err == nil {
			return out, nil
		}
		last = err
		if ctx.Err() != nil {
			break
		}
		r.logger.Printf("model call attempt %d/%d failed: %v", attempt, tries, err)
		if attempt < tries {
			select {
			case <-time.After(r.backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return "", &ModelUnavailableError{Attempts: attempt, Last: ctx.Err()}
			}
		}
	}
	return "", &ModelUnavailableError{Attempts: tries, Last: last}
}
