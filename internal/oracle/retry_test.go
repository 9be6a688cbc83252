package oracle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func passVerdict(marks int) MockVerdict {
	return MockVerdict{Result: &Result{
		MarksAwarded: marks,
		Feedback:     "Good recall of the key points.",
		Assessment:   "good",
	}}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockClient(passVerdict(3))
	c := WithRetry(mock, retryConfig())

	result, err := c.Grade(context.Background(), Request{TotalMarks: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MarksAwarded != 3 {
		t.Fatalf("marks = %d, want 3", result.MarksAwarded)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockClient(
		MockVerdict{Err: &ErrOracleUnavailable{Err: errors.New("down")}},
		passVerdict(2),
	)
	c := WithRetry(mock, retryConfig())

	result, err := c.Grade(context.Background(), Request{TotalMarks: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MarksAwarded != 2 {
		t.Fatalf("marks = %d, want 2", result.MarksAwarded)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockClient(
		MockVerdict{Err: &ErrOracleUnavailable{Err: errors.New("down")}},
		MockVerdict{Err: &ErrOracleUnavailable{Err: errors.New("down")}},
		MockVerdict{Err: &ErrOracleUnavailable{Err: errors.New("down")}},
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Grade(context.Background(), Request{TotalMarks: 4})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockClient(
		MockVerdict{Err: &ErrTruncated{}},
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Grade(context.Background(), Request{TotalMarks: 4})
	if err == nil {
		t.Fatal("expected error")
	}
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("expected ErrTruncated, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_InvalidVerdictRetriedOnce(t *testing.T) {
	mock := NewMockClient(
		MockVerdict{Err: &ErrInvalidVerdict{Err: errors.New("bad")}},
		MockVerdict{Err: &ErrInvalidVerdict{Err: errors.New("bad")}},
		passVerdict(1), // Won't be reached.
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Grade(context.Background(), Request{TotalMarks: 4})
	if err == nil {
		t.Fatal("expected error")
	}
	// Should have retried once (2 calls total), then stopped.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockClient(
		MockVerdict{Err: &ErrOracleUnavailable{Err: errors.New("down")}},
		MockVerdict{Err: &ErrOracleUnavailable{Err: errors.New("down")}},
		passVerdict(1),
	)
	c := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := c.Grade(ctx, Request{TotalMarks: 4})
	if err == nil {
		t.Fatal("expected error")
	}
	// The first attempt runs, the backoff select observes cancellation.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_RespectsRateLimitRetryAfter(t *testing.T) {
	mock := NewMockClient(
		MockVerdict{Err: &ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}},
		passVerdict(4),
	)
	c := WithRetry(mock, retryConfig())

	start := time.Now()
	result, err := c.Grade(context.Background(), Request{TotalMarks: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MarksAwarded != 4 {
		t.Fatalf("marks = %d, want 4", result.MarksAwarded)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("elapsed = %s, expected at least the RetryAfter wait", elapsed)
	}
}
