package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/hanki/internal/azure"
)

// AzureProvider implements Provider using the Azure neural TTS service.
type AzureProvider struct {
	client *azure.Client
	log    zerolog.Logger
}

// NewAzureProvider creates a new Azure TTS provider
func NewAzureProvider(client *azure.Client, log zerolog.Logger) *AzureProvider {
	return &AzureProvider{client: client, log: log}
}

// GenerateAudio synthesizes text and writes the mp3 bytes to outputFile
func (p *AzureProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateMandarinText(text); err != nil {
		return err
	}

	data, err := p.client.Synthesize(ctx, text)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	p.log.Debug().Str("file", outputFile).Msg("wrote audio file")
	return nil
}

// Name returns the provider name
func (p *AzureProvider) Name() string {
	return "azure"
}

// IsAvailable checks if the provider has a configured client
func (p *AzureProvider) IsAvailable() error {
	if p.client == nil {
		return fmt.Errorf("azure speech client not configured")
	}
	return nil
}
