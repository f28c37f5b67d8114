// Package audio generates spoken Mandarin audio files for cards.
package audio

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/hanki/internal/azure"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// GenerateAudio generates audio from text and saves it to the specified file
	GenerateAudio(ctx context.Context, text string, outputFile string) error

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider string // "azure" or "espeak"

	// espeak-ng settings for the offline fallback
	ESpeakVoice string
	ESpeakSpeed int
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "azure",
		ESpeakVoice: "cmn",
		ESpeakSpeed: 140,
	}
}

// NewProvider creates the appropriate audio provider based on configuration
func NewProvider(config *Config, client *azure.Client, log zerolog.Logger) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "azure":
		if client == nil {
			return nil, fmt.Errorf("azure speech client is not configured")
		}
		return NewAzureProvider(client, log), nil

	case "espeak":
		return NewESpeakProvider(config)

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	log      zerolog.Logger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider, log zerolog.Logger) Provider {
	return &ProviderWithFallback{primary: primary, fallback: fallback, log: log}
}

// GenerateAudio tries the primary provider first, falls back on error
func (p *ProviderWithFallback) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	err := p.primary.GenerateAudio(ctx, text, outputFile)
	if err != nil {
		p.log.Warn().Err(err).Str("primary", p.primary.Name()).Str("fallback", p.fallback.Name()).
			Msg("primary audio provider failed, falling back")
		return p.fallback.GenerateAudio(ctx, text, outputFile)
	}
	return nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v", primaryErr, fallbackErr)
}
