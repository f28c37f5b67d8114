package emphasis

import (
	"strings"
	"testing"

	"codeberg.org/snonux/hanki/internal/tokenizer"
)

func tokensFor(texts ...string) []tokenizer.Token {
	tokens := make([]tokenizer.Token, len(texts))
	for i, text := range texts {
		tokens[i] = tokenizer.Token{Text: text}
	}
	return tokens
}

func TestRenderBalancedSpans(t *testing.T) {
	tokens := tokensFor("你", "今天", "看起來", "很", "*", "時尚", "*")

	got := Render(tokens)
	want := "你今天看起來很<span class=starred>時尚</span>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	if strings.Count(got, "<span class=starred>") != 1 || strings.Count(got, "</span>") != 1 {
		t.Error("Expected exactly one opening and one closing span")
	}
}

func TestRenderOddDelimiterLeavesSpanOpen(t *testing.T) {
	tokens := tokensFor("很", "*", "時尚")

	got := Render(tokens)
	if strings.Count(got, "<span class=starred>") != 1 {
		t.Errorf("Expected one opening span, got %q", got)
	}
	if strings.Contains(got, "</span>") {
		t.Errorf("Odd delimiter count must leave the span open, got %q", got)
	}
}

func TestRenderMultiplePairs(t *testing.T) {
	tokens := tokensFor("*", "你", "*", "很", "*", "時尚", "*")

	got := Render(tokens)
	want := "<span class=starred>你</span>很<span class=starred>時尚</span>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderPlainDropsDelimiter(t *testing.T) {
	tokens := tokensFor("你", "很", "*", "時尚", "*")

	got := RenderPlain(tokens)
	if got != "你很時尚" {
		t.Errorf("RenderPlain = %q, want 你很時尚", got)
	}
	if strings.Contains(got, Delimiter) || strings.Contains(got, "span") {
		t.Errorf("RenderPlain must contain neither delimiter nor markup: %q", got)
	}
}

func TestRenderReadingMatchesTokenToggle(t *testing.T) {
	got := RenderReading("nǐ hěn *shíshàng*")
	want := "nǐ hěn <span class=starred>shíshàng</span>"
	if got != want {
		t.Errorf("RenderReading = %q, want %q", got, want)
	}
}

func TestRenderReadingNoDelimiter(t *testing.T) {
	if got := RenderReading("ㄋㄧˇㄏㄠˇ"); got != "ㄋㄧˇㄏㄠˇ" {
		t.Errorf("RenderReading without delimiters must be identity, got %q", got)
	}
}
