package related

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/hanki/internal/dict"
)

// OpenAISuggester asks an OpenAI chat model for related words.
type OpenAISuggester struct {
	client  *openai.Client
	model   string
	variant dict.ScriptVariant
	log     zerolog.Logger
}

// NewOpenAISuggester creates a suggester for the given API key. An optional
// organisation ID is attached to every request.
func NewOpenAISuggester(apiKey, organisation, model string, variant dict.ScriptVariant, log zerolog.Logger) *OpenAISuggester {
	config := openai.DefaultConfig(apiKey)
	if organisation != "" {
		config.OrgID = organisation
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAISuggester{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		variant: variant,
		log:     log.With().Str("suggester", "openai").Logger(),
	}
}

// Suggest returns related-word suggestions for word.
func (s *OpenAISuggester) Suggest(ctx context.Context, word string) ([]SimilarWord, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(word, s.variant)},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("related-word request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("related-word response contained no choices")
	}

	message := resp.Choices[0].Message.Content
	s.log.Trace().Str("word", word).Str("response", message).Msg("related-word response")

	words := parseSuggestions(message)
	s.log.Debug().Str("word", word).Int("suggestions", len(words)).Msg("parsed related words")
	return words, nil
}
