package cli

import (
	"strings"
	"testing"
)

func TestStdinCorrectorReturnsAnswer(t *testing.T) {
	var out strings.Builder
	correct := StdinCorrector(strings.NewReader("ni3 hao3\n"), &out)

	got, err := correct("nǐ hǎoo")
	if err != nil {
		t.Fatalf("correction failed: %v", err)
	}
	if got != "ni3 hao3" {
		t.Errorf("correction = %q, want %q", got, "ni3 hao3")
	}
	if !strings.Contains(out.String(), "nǐ hǎoo") {
		t.Errorf("prompt should show the failing transcription, got %q", out.String())
	}
}

func TestStdinCorrectorEmptyAnswerKeepsCandidate(t *testing.T) {
	var out strings.Builder
	correct := StdinCorrector(strings.NewReader("\n"), &out)

	got, err := correct("nǐ hǎo")
	if err != nil {
		t.Fatalf("correction failed: %v", err)
	}
	if got != "nǐ hǎo" {
		t.Errorf("correction = %q, want the original candidate", got)
	}
}

func TestStdinCorrectorClosedInput(t *testing.T) {
	var out strings.Builder
	correct := StdinCorrector(strings.NewReader(""), &out)

	if _, err := correct("nǐ hǎo"); err == nil {
		t.Error("expected an error when input is closed")
	}
}

func TestStdinCorrectorSequentialPrompts(t *testing.T) {
	var out strings.Builder
	correct := StdinCorrector(strings.NewReader("first\nsecond\n"), &out)

	got, err := correct("a")
	if err != nil || got != "first" {
		t.Fatalf("first correction = %q, %v", got, err)
	}
	got, err = correct("b")
	if err != nil || got != "second" {
		t.Fatalf("second correction = %q, %v", got, err)
	}
}
