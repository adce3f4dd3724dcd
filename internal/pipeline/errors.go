package pipeline

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/myrjola/glitchcity/internal/errors"
)

var (
	// ErrInvalidInput means the request parameters were malformed. Surfaced
	// verbatim to the caller, never retried.
	ErrInvalidInput = errors.NewSentinel("invalid input")
	// ErrMalformedModelOutput means the text model did not return valid JSON
	// or the parsed object broke a structural invariant. The whole pipeline
	// must be re-run from prompt construction; the state is not salvageable.
	ErrMalformedModelOutput = errors.NewSentinel("text model did not return valid JSON")
)

// Suggested client-side retry window for overload escalation: base delay plus
// bounded random jitter.
const (
	retryAfterBase      = 6500 * time.Millisecond
	retryAfterJitterMax = 4000 * time.Millisecond
)

// OverloadError is the terminal result of the two-layer overload policy: the
// clients already spent their fast internal retries, so the pipeline gives up
// and hands the caller a suggested delay before trying again.
type OverloadError struct {
	// Phase is the pipeline stage that hit the overload: "text", "image" or "unknown".
	Phase string
	// RetryAfter is the suggested client-side delay before retrying.
	RetryAfter time.Duration
	err        error
}

func newOverloadError(phase string, err error) *OverloadError {
	jitter := time.Duration(rand.Int63n(int64(retryAfterJitterMax))) //nolint:gosec // jitter, not security
	return &OverloadError{
		Phase:      phase,
		RetryAfter: retryAfterBase + jitter,
		err:        err,
	}
}

func (e *OverloadError) Error() string {
	return fmt.Sprintf("model overloaded during %s phase: %s", e.Phase, e.err.Error())
}

func (e *OverloadError) Unwrap() error {
	return e.err
}
