// Package related fetches AI-suggested vocabulary close to a given word,
// used to fill the "Similar Words" field of word cards.
package related

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/snonux/hanki/internal/dict"
)

// SimilarWord is one suggestion: the related word and its English
// translation.
type SimilarWord struct {
	Word        string
	Translation string
}

// Suggester produces related-word suggestions for a Mandarin word.
type Suggester interface {
	Suggest(ctx context.Context, word string) ([]SimilarWord, error)
}

const systemPrompt = "You are a Taiwanese Mandarin Study Assistant generating study material"

func userPrompt(word string, variant dict.ScriptVariant) string {
	return fmt.Sprintf("Generate 5 words closely related to %s which are used commonly in Taiwanese Mandarin. "+
		"You should provide the words in %s and the English Translation in CSV format with two columns.",
		word, variant.DisplayName())
}

// parseSuggestions extracts suggestions from the model's free-form reply:
// rows with at least two comma-separated columns whose first column
// classifies as Mandarin. Everything else (headers, prose, code fences) is
// dropped.
func parseSuggestions(message string) []SimilarWord {
	var words []SimilarWord
	for _, line := range strings.Split(message, "\n") {
		cols := strings.Split(line, ",")
		if len(cols) < 2 {
			continue
		}
		word := strings.TrimSpace(cols[0])
		if dict.Classify(word) != dict.Mandarin {
			continue
		}
		words = append(words, SimilarWord{
			Word:        word,
			Translation: strings.TrimSpace(cols[1]),
		})
	}
	return words
}
