// Package card assembles the final flashcard field sets from the tokenizer,
// phonetic, translation, audio and related-word outputs. Each builder is a
// short-circuiting pipeline per input row: a row that cannot become a card
// returns nil without error and is skipped.
package card

import (
	"context"

	"codeberg.org/snonux/hanki/internal/dict"
	"codeberg.org/snonux/hanki/internal/phonetic"
)

// Translator translates Mandarin text to English.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Transliterator converts Mandarin text to tone-marked pinyin.
type Transliterator interface {
	Transliterate(ctx context.Context, text string) (string, error)
}

// Word is a finished word card: one note plus the audio artifact backing
// its sound field.
type Word struct {
	Timestamp    string
	Hanzi        string
	Definition   string
	Audio        string // "[sound:...]" note field
	AudioPath    string // artifact on disk, bundled into the package
	Reading      string
	SimilarWords string
}

// Sentence is a finished sentence card.
type Sentence struct {
	Timestamp string
	Hanzi     string // emphasis-rendered
	Meaning   string
	Audio     string
	AudioPath string
	Reading   string // emphasis-rendered
}

// Options carries the per-run settings shared by both pipelines.
type Options struct {
	Notation phonetic.Notation
	Variant  dict.ScriptVariant
	MediaDir string // shared output directory for audio artifacts
}
