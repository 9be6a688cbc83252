package oracle

import (
	"context"
	"log/slog"
	"time"

	"github.com/revisely/revisely/internal/store"
)

// LoggingClient is a decorator that records every oracle request as an event.
type LoggingClient struct {
	inner     Client
	provider  string
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// WithLogging wraps a Client with event logging. provider names the
// backing service for the audit trail.
func WithLogging(c Client, provider string, repo store.EventRepo, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingClient{inner: c, provider: provider, eventRepo: repo, logger: logger}
}

func (l *LoggingClient) Grade(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	result, err := l.inner.Grade(ctx, req)

	data := store.OracleRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if result != nil {
		data.InputTokens = result.Usage.InputTokens
		data.OutputTokens = result.Usage.OutputTokens
		data.Model = result.Model
		data.MarksAwarded = result.MarksAwarded
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the grade if logging fails.
	if logErr := l.eventRepo.AppendOracleRequest(ctx, data); logErr != nil {
		l.logger.Warn("failed to log oracle request event", "error", logErr)
	}

	return result, err
}

func (l *LoggingClient) ModelID() string {
	return l.inner.ModelID()
}
