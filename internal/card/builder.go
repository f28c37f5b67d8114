package card

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/hanki/internal"
	"codeberg.org/snonux/hanki/internal/audio"
	"codeberg.org/snonux/hanki/internal/dict"
	"codeberg.org/snonux/hanki/internal/emphasis"
	"codeberg.org/snonux/hanki/internal/phonetic"
	"codeberg.org/snonux/hanki/internal/related"
	"codeberg.org/snonux/hanki/internal/tokenizer"
)

// Builder runs the word and sentence pipelines against the injected
// collaborators. Safe for concurrent use; the phonetic converter serializes
// its own correction prompt.
type Builder struct {
	dictionary     *dict.Dictionary
	translator     Translator
	transliterator Transliterator
	speech         audio.Provider
	suggester      related.Suggester
	converter      *phonetic.Converter
	opts           Options
	log            zerolog.Logger
}

// NewBuilder wires a builder from its collaborators.
func NewBuilder(
	dictionary *dict.Dictionary,
	translator Translator,
	transliterator Transliterator,
	speech audio.Provider,
	suggester related.Suggester,
	converter *phonetic.Converter,
	opts Options,
	log zerolog.Logger,
) *Builder {
	return &Builder{
		dictionary:     dictionary,
		translator:     translator,
		transliterator: transliterator,
		speech:         speech,
		suggester:      suggester,
		converter:      converter,
		opts:           opts,
		log:            log,
	}
}

// BuildWord builds a word card from a single token. A token the dictionary
// does not recognize produces no card and no error.
func (b *Builder) BuildWord(ctx context.Context, token tokenizer.Token, override string) (*Word, error) {
	if !token.IsWord() {
		b.log.Warn().Str("word", token.Text).Msg("word wasn't recognisably Mandarin, skipping")
		return nil, nil
	}

	definition := override
	if definition == "" {
		definition = joinGlosses(token.Entries)
	}
	if definition == "" {
		translated, err := b.translator.Translate(ctx, token.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to translate word %q: %w", token.Text, err)
		}
		definition = translated
	}
	b.log.Debug().Str("word", token.Text).Str("definition", definition).Msg("built word definition")

	reading := phonetic.WordReading(token.Entries, b.opts.Notation)
	if reading == "" {
		// A matched word entry always carries phonetic numbers; hitting this
		// means the dictionary data is broken, not the row.
		return nil, fmt.Errorf("word %q has no extractable phonetic reading", token.Text)
	}

	audioField, audioPath, err := b.generateAudio(ctx, token.Text)
	if err != nil {
		return nil, err
	}

	similar, err := b.buildSimilarWords(ctx, token.Text)
	if err != nil {
		return nil, err
	}

	return &Word{
		Timestamp:    internal.NoteTimestamp(),
		Hanzi:        token.Text,
		Definition:   definition,
		Audio:        audioField,
		AudioPath:    audioPath,
		Reading:      reading,
		SimilarWords: similar,
	}, nil
}

// BuildSentence builds a sentence card. A sentence with no recognized
// Mandarin token produces no card and no error.
func (b *Builder) BuildSentence(ctx context.Context, sentence tokenizer.Sentence, override string) (*Sentence, error) {
	if !sentence.HasMandarin() {
		b.log.Warn().Str("sentence", sentence.Raw).Msg("sentence had no recognisable Mandarin characters, skipping")
		return nil, nil
	}

	plain := emphasis.RenderPlain(sentence.Tokens)
	display := emphasis.Render(sentence.Tokens)
	b.log.Debug().Str("plain", plain).Str("display", display).Msg("built sentence renderings")

	meaning := override
	if meaning == "" {
		translated, err := b.translator.Translate(ctx, plain)
		if err != nil {
			return nil, fmt.Errorf("failed to translate sentence: %w", err)
		}
		meaning = translated
	}

	// The transliteration service tolerates the raw emphasis delimiters and
	// passes them through, which is what lets the reading spans line up.
	pinyin, err := b.transliterator.Transliterate(ctx, sentence.Raw)
	if err != nil {
		return nil, fmt.Errorf("failed to transliterate sentence: %w", err)
	}

	reading := pinyin
	if b.opts.Notation == phonetic.Zhuyin {
		reading, err = b.converter.PinyinToZhuyin(pinyin)
		if err != nil {
			return nil, fmt.Errorf("failed to convert reading to zhuyin: %w", err)
		}
	}
	reading = emphasis.RenderReading(reading)
	b.log.Debug().Str("reading", reading).Msg("built sentence reading")

	audioField, audioPath, err := b.generateAudio(ctx, plain)
	if err != nil {
		return nil, err
	}

	return &Sentence{
		Timestamp: internal.NoteTimestamp(),
		Hanzi:     display,
		Meaning:   meaning,
		Audio:     audioField,
		AudioPath: audioPath,
		Reading:   reading,
	}, nil
}

// generateAudio synthesizes text into the shared media directory and
// returns the note field plus the artifact path.
func (b *Builder) generateAudio(ctx context.Context, text string) (field, path string, err error) {
	name := internal.AudioFileName(text)
	path = filepath.Join(b.opts.MediaDir, name)
	if err := b.speech.GenerateAudio(ctx, text, path); err != nil {
		return "", "", fmt.Errorf("failed to generate audio: %w", err)
	}
	b.log.Debug().Str("file", path).Msg("audio artifact written")
	return fmt.Sprintf("[sound:%s]", name), path, nil
}

// buildSimilarWords fetches suggestions and formats them one per line.
// Suggestions missing from the dictionary are dropped.
func (b *Builder) buildSimilarWords(ctx context.Context, word string) (string, error) {
	if b.suggester == nil {
		return "", nil
	}
	suggestions, err := b.suggester.Suggest(ctx, word)
	if err != nil {
		return "", fmt.Errorf("failed to fetch related words: %w", err)
	}

	var lines []string
	for _, s := range suggestions {
		line, ok := b.formatSimilar(s)
		if !ok {
			b.log.Warn().Str("word", s.Word).Msg("related word not in dictionary, dropping")
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "<br>"), nil
}

// formatSimilar renders one suggestion as "word, reading, translation". The
// reading comes from looking the suggestion back up in the dictionary: a
// hit with the same character count is used directly, otherwise all matched
// entries' readings are joined.
func (b *Builder) formatSimilar(s related.SimilarWord) (string, bool) {
	entries := b.dictionary.Lookup(s.Word)
	if len(entries) == 0 {
		return "", false
	}

	var reading string
	sameLength := len([]rune(entries[0].Headword(b.opts.Variant))) == len([]rune(s.Word))
	if sameLength {
		reading = phonetic.EntryReading(entries[0], b.opts.Notation)
	} else {
		reading = phonetic.WordReading(entries, b.opts.Notation)
	}

	return fmt.Sprintf("%s, %s, %s", s.Word, reading, s.Translation), true
}

// joinGlosses flattens all English glosses of all entries into one
// comma-joined definition string.
func joinGlosses(entries []*dict.Entry) string {
	var glosses []string
	for _, e := range entries {
		for _, g := range e.English {
			if g != "" {
				glosses = append(glosses, g)
			}
		}
	}
	return strings.Join(glosses, ", ")
}
