package related

import (
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/hanki/internal/dict"
)

func TestParseSuggestions(t *testing.T) {
	message := `Here are 5 related words:

詞語, word or phrase
句子, sentence
Grammar, grammar
文法, grammar
incomplete line
語言, language`

	got := parseSuggestions(message)
	want := []SimilarWord{
		{Word: "詞語", Translation: "word or phrase"},
		{Word: "句子", Translation: "sentence"},
		{Word: "文法", Translation: "grammar"},
		{Word: "語言", Translation: "language"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseSuggestions = %+v, want %+v", got, want)
	}
}

func TestParseSuggestionsKeepsFirstTwoColumns(t *testing.T) {
	got := parseSuggestions("時尚, fashion, trendy")
	if len(got) != 1 || got[0].Translation != "fashion" {
		t.Errorf("Expected first translation column kept, got %+v", got)
	}
}

func TestParseSuggestionsEmpty(t *testing.T) {
	if got := parseSuggestions("No suggestions available."); got != nil {
		t.Errorf("Expected nil for prose-only reply, got %+v", got)
	}
}

func TestUserPromptMentionsScript(t *testing.T) {
	prompt := userPrompt("你好", dict.Traditional)
	if !strings.Contains(prompt, "你好") || !strings.Contains(prompt, "Traditional Chinese") {
		t.Errorf("Prompt missing word or script name: %s", prompt)
	}
}
