package ai

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/myrjola/glitchcity/internal/errors"
	"google.golang.org/genai"
)

// retryOptions bounds the retry loop shared by the text and image clients.
// Total attempts = retries + 1. Delays follow base*2^attempt capped at
// maxDelay, plus up to jitterMax of random jitter.
type retryOptions struct {
	retries   int
	baseDelay time.Duration
	maxDelay  time.Duration
}

const jitterMax = 250 * time.Millisecond

// transientStatusCodes are upstream HTTP statuses worth retrying: overload,
// rate limiting and gateway-level flakiness.
var transientStatusCodes = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// transientMarkers is the free-text fallback classification for errors that
// do not carry a structured status code. Inherently fragile against upstream
// message-format changes, which is why the structured check runs first.
var transientMarkers = []string{
	"503",
	"429",
	"overloaded",
	"service unavailable",
	"internal error",
	"backend error",
	"rate limit",
	"ratelimit",
	"quota",
	"resource has been exhausted",
	"resource exhausted",
	"timeout",
	"deadline exceeded",
	"network",
	"connection reset",
	"connection refused",
	"econnreset",
	"etimedout",
}

// IsTransient reports whether err looks like a temporary upstream condition
// (overload, rate limit, network blip) that is eligible for automatic retry.
// Structured genai API errors are classified by status code; everything else
// falls back to substring matching on the error text.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return transientStatusCodes[apiErr.Code]
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// withRetry runs fn with bounded retries on transient failures. Non-transient
// failures and context cancellation propagate immediately; the final
// transient failure propagates after the attempt budget is spent.
func withRetry[T any](ctx context.Context, logger *slog.Logger, opts retryOptions, fn func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)

	for attempt := 0; attempt <= opts.retries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) || attempt == opts.retries {
			break
		}
		if ctx.Err() != nil {
			break
		}

		delay := opts.baseDelay << attempt
		if delay > opts.maxDelay {
			delay = opts.maxDelay
		}
		delay += time.Duration(rand.Int63n(int64(jitterMax))) //nolint:gosec // jitter, not security

		logger.LogAttrs(ctx, slog.LevelWarn, "transient upstream failure, backing off",
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			errors.SlogError(err))

		select {
		case <-ctx.Done():
			return zero, errors.Wrap(ctx.Err(), "retry interrupted")
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}
