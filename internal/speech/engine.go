package speech

import (
	"context"
	"errors"
	"fmt"
)

// ErrVoicesNotReady signals that the platform has not finished loading its
// voice list yet. The Speaker defers the utterance and proceeds exactly once
// when the list becomes available.
var ErrVoicesNotReady = errors.New("voice list not loaded yet")

// Voice describes one engine voice.
type Voice struct {
	Name     string // engine-specific voice identifier
	Language string // BCP-47-ish language tag, e.g. "fr" or "fr-FR"
}

// Engine is the platform speech-synthesis capability.
type Engine interface {
	// Voices returns the available voices, or ErrVoicesNotReady while the
	// platform is still loading them.
	Voices() ([]Voice, error)

	// Speak pronounces text with the given voice, blocking until speech ends
	// or the context is cancelled. A zero Voice means the engine default for
	// the locale.
	Speak(ctx context.Context, text string, voice Voice) error

	// Name returns the engine name
	Name() string
}

// Config holds common configuration for speech engines
type Config struct {
	Engine string // Engine name: "espeak" or "openai"
	Locale string // Requested locale, e.g. "fr-FR"

	// espeak-specific settings
	ESpeakRate int // Words per minute; slower than the engine default

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice string  // preferred voice, empty for policy selection
	OpenAISpeed float64 // 0.25 to 4.0
}

// DefaultConfig returns default configuration: French locale, a speaking
// rate slower than each engine's default.
func DefaultConfig() *Config {
	return &Config{
		Engine:      "espeak",
		Locale:      "fr-FR",
		ESpeakRate:  130,
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAISpeed: 0.9,
	}
}

// NewEngine creates the appropriate speech engine based on configuration.
func NewEngine(config *Config) (Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Engine {
	case "", "espeak":
		return NewESpeakEngine(config)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required for the openai speech engine")
		}
		return NewOpenAIEngine(config)

	default:
		return nil, fmt.Errorf("unknown speech engine: %s", config.Engine)
	}
}
