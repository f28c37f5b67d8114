package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ESpeakProvider implements Provider using the espeak-ng engine, for
// keyless or offline runs. Quality is far below the neural voices; it
// exists as a fallback only.
type ESpeakProvider struct {
	voice string
	speed int
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *Config) (*ESpeakProvider, error) {
	voice := config.ESpeakVoice
	if voice == "" {
		voice = "cmn"
	}
	speed := config.ESpeakSpeed
	if speed == 0 {
		speed = 140
	}

	p := &ESpeakProvider{voice: voice, speed: speed}
	if err := p.IsAvailable(); err != nil {
		return nil, err
	}
	return p, nil
}

// GenerateAudio generates audio using espeak-ng
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateMandarinText(text); err != nil {
		return err
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// espeak-ng writes wav; keep the requested filename regardless since
	// Anki plays either container.
	cmd := exec.CommandContext(ctx, "espeak-ng",
		"-v", p.voice,
		"-s", fmt.Sprintf("%d", p.speed),
		"-w", outputFile,
		text,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, output)
	}
	return nil
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("espeak-ng is not installed: %w", err)
	}
	return nil
}
