// Package tokenizer splits raw Mandarin input into an ordered token sequence:
// dictionary-recognized words plus single-character runs of everything else
// (punctuation, emphasis markers, Latin text). Concatenating the token texts
// always reproduces the input exactly.
package tokenizer

import (
	"strings"

	"codeberg.org/snonux/hanki/internal/dict"
)

// Token is one segment of the input. Entries is nil for a non-Mandarin
// character and non-nil (possibly empty) for a segmenter-recognized word.
type Token struct {
	Text    string
	Entries []*dict.Entry
}

// IsWord reports whether the token carries at least one dictionary entry.
func (t Token) IsWord() bool {
	return len(t.Entries) > 0
}

// Sentence is a tokenized input row. Raw is the original text, untouched.
type Sentence struct {
	Raw    string
	Tokens []Token
}

// NewSentence tokenizes raw against d.
func NewSentence(d *dict.Dictionary, raw string) Sentence {
	return Sentence{Raw: raw, Tokens: Tokenize(d, raw)}
}

// HasMandarin reports whether any token matched the dictionary.
func (s Sentence) HasMandarin() bool {
	for _, t := range s.Tokens {
		if t.IsWord() {
			return true
		}
	}
	return false
}

// Tokenize walks raw left to right, emitting each segmenter-recognized word
// as one token and every character outside recognized words as its own
// entry-less token.
func Tokenize(d *dict.Dictionary, raw string) []Token {
	var tokens []Token
	cursor := 0

	for _, word := range d.Segment(raw) {
		at := strings.Index(raw[cursor:], word)
		if at < 0 {
			// Segmenter handed back a string not present after the cursor;
			// skip it rather than corrupt the partition.
			continue
		}
		at += cursor

		for _, r := range raw[cursor:at] {
			tokens = append(tokens, Token{Text: string(r)})
		}
		entries := d.Lookup(word)
		if entries == nil {
			// A recognized word with no hit is still a word token, not a
			// punctuation run.
			entries = []*dict.Entry{}
		}
		tokens = append(tokens, Token{Text: word, Entries: entries})
		cursor = at + len(word)
	}

	for _, r := range raw[cursor:] {
		tokens = append(tokens, Token{Text: string(r)})
	}

	return tokens
}
