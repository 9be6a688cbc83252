package oracle

import (
	"fmt"
	"log/slog"

	"github.com/revisely/revisely/internal/store"
)

// NewClient creates a Client from configuration, wrapped with retry and
// event-logging middleware.
func NewClient(cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Client, error) {
	var base Client
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicClient(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIClient(cfg.OpenAI)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s oracle: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, logger)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewClientFromEnv builds a Client from REVISELY_* env vars, falling back
// to discovery of standard provider API key vars.
func NewClientFromEnv(eventRepo store.EventRepo, logger *slog.Logger) (Client, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewClient(cfg, eventRepo, logger)
}
