package related

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"codeberg.org/snonux/hanki/internal/dict"
)

// GeminiSuggester asks a Gemini model for related words.
type GeminiSuggester struct {
	client  *genai.Client
	model   string
	variant dict.ScriptVariant
	log     zerolog.Logger
}

// NewGeminiSuggester creates a Gemini-backed suggester.
func NewGeminiSuggester(ctx context.Context, apiKey, model string, variant dict.ScriptVariant, log zerolog.Logger) (*GeminiSuggester, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiSuggester{
		client:  client,
		model:   model,
		variant: variant,
		log:     log.With().Str("suggester", "gemini").Logger(),
	}, nil
}

// Suggest returns related-word suggestions for word.
func (s *GeminiSuggester) Suggest(ctx context.Context, word string) ([]SimilarWord, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		genai.Text(userPrompt(word, s.variant)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		})
	if err != nil {
		return nil, fmt.Errorf("related-word request failed: %w", err)
	}

	message := resp.Text()
	if message == "" {
		return nil, fmt.Errorf("related-word response was empty")
	}
	s.log.Trace().Str("word", word).Str("response", message).Msg("related-word response")

	words := parseSuggestions(message)
	s.log.Debug().Str("word", word).Int("suggestions", len(words)).Msg("parsed related words")
	return words, nil
}
