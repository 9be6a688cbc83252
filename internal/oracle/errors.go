package oracle

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidVerdict indicates the oracle returned content that is not a
// usable grading verdict: malformed JSON, schema violation, or marks
// outside [0, TotalMarks].
type ErrInvalidVerdict struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidVerdict) Error() string {
	return fmt.Sprintf("invalid oracle verdict: %v", e.Err)
}

func (e *ErrInvalidVerdict) Unwrap() error { return e.Err }

// ErrOracleUnavailable indicates the provider is down or unreachable.
type ErrOracleUnavailable struct {
	Err error
}

func (e *ErrOracleUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grading oracle unavailable: %v", e.Err)
	}
	return "grading oracle unavailable"
}

func (e *ErrOracleUnavailable) Unwrap() error { return e.Err }

// ErrTruncated indicates the verdict was cut off by the token limit.
type ErrTruncated struct {
	Content json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "oracle verdict truncated: max tokens exceeded"
}
