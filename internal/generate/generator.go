package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// ErrNoAPIKey signals that generation was attempted with no configured
// credential. Callers surface it distinctly so the user can be pointed at
// the settings sheet instead of being told to retry.
var ErrNoAPIKey = errors.New("generation API key not configured")

// Generator produces a fully populated card for a headword. One attempt per
// call; there is no retry policy anywhere in the system.
type Generator interface {
	Generate(ctx context.Context, word string) (card.WordCard, error)

	// Name returns the provider name
	Name() string
}

// Config selects and configures a generation provider.
type Config struct {
	Provider string // "openai" or "gemini"
	APIKey   string
	Model    string // provider model override, empty for the default
}

// NewGenerator creates the configured provider wrapped in a circuit breaker.
// A missing API key is not an error here: the provider reports ErrNoAPIKey
// per generation attempt so the GUI can prompt for configuration.
func NewGenerator(config *Config) (Generator, error) {
	if config == nil {
		config = &Config{Provider: "openai"}
	}

	var inner Generator
	switch config.Provider {
	case "", "openai":
		inner = NewOpenAIGenerator(config.APIKey, config.Model)
	case "gemini":
		inner = NewGeminiGenerator(config.APIKey, config.Model)
	default:
		return nil, fmt.Errorf("unknown generation provider: %s", config.Provider)
	}

	return withBreaker(inner), nil
}

// breakerGenerator fails fast when the generation endpoint keeps erroring,
// instead of hanging the add-word sheet on every attempt.
type breakerGenerator struct {
	inner Generator
	cb    *gobreaker.CircuitBreaker
}

func withBreaker(inner Generator) Generator {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "generation",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			// A missing credential is a configuration problem, not an
			// endpoint failure. It must not open the breaker.
			return err == nil || errors.Is(err, ErrNoAPIKey)
		},
	})

	return &breakerGenerator{inner: inner, cb: cb}
}

// Generate delegates to the wrapped provider through the breaker.
func (g *breakerGenerator) Generate(ctx context.Context, word string) (card.WordCard, error) {
	result, err := g.cb.Execute(func() (interface{}, error) {
		return g.inner.Generate(ctx, word)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return card.WordCard{}, fmt.Errorf("generation service unavailable: %w", err)
		}
		return card.WordCard{}, err
	}
	return result.(card.WordCard), nil
}

// Name returns the provider name
func (g *breakerGenerator) Name() string {
	return g.inner.Name()
}
