package phonetic

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/rs/zerolog"
)

// maxSyllableLen is the longest pinyin syllable in letters ("zhuang").
const maxSyllableLen = 6

// CorrectFunc is the operator correction hook invoked when a romanized
// sentence cannot be parsed. It receives the failing candidate and returns
// the corrected string.
type CorrectFunc func(candidate string) (string, error)

// Converter turns a whole tone-marked pinyin sentence into zhuyin. Parse
// failures fall back to the correction hook, which is a single shared
// resource: concurrent rows serialize on it.
type Converter struct {
	correct CorrectFunc
	mu      sync.Mutex
	log     zerolog.Logger
}

// NewConverter creates a converter with the given correction hook. A nil
// hook turns parse failures into hard errors.
func NewConverter(correct CorrectFunc, log zerolog.Logger) *Converter {
	return &Converter{correct: correct, log: log}
}

// PinyinToZhuyin converts a tone-marked pinyin sentence to zhuyin. On a
// parse failure it prompts the operator once with the unparseable text and
// retries the conversion on the corrected string; a second failure is fatal
// for the caller's row.
func (c *Converter) PinyinToZhuyin(pinyin string) (string, error) {
	zhuyin, err := convertSentence(pinyin)
	if err == nil {
		return zhuyin, nil
	}
	if c.correct == nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.log.Warn().Err(err).Str("pinyin", pinyin).Msg("pinyin parse failed, asking for manual correction")
	corrected, cerr := c.correct(pinyin)
	if cerr != nil {
		return "", fmt.Errorf("manual correction failed: %w", cerr)
	}

	zhuyin, err = convertSentence(corrected)
	if err != nil {
		return "", fmt.Errorf("corrected pinyin still unparseable: %w", err)
	}
	return zhuyin, nil
}

// convertSentence normalizes separators and runs the syllable-stream parse:
// spaces become commas, and a full-width comma followed by the half-width
// comma this introduces collapses back to the full-width one.
func convertSentence(pinyin string) (string, error) {
	normalized := strings.ReplaceAll(pinyin, " ", ",")
	normalized = strings.ReplaceAll(normalized, "，,", "，")

	var b strings.Builder
	var run []rune
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		converted, err := convertRun(string(run))
		if err != nil {
			return err
		}
		b.WriteString(converted)
		run = nil
		return nil
	}

	for _, r := range normalized {
		if isPinyinLetter(r) {
			run = append(run, r)
			continue
		}
		if err := flush(); err != nil {
			return "", err
		}
		// Apostrophes only disambiguate syllable boundaries; everything
		// else passes through unchanged.
		if r != '\'' {
			b.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return "", err
	}

	return b.String(), nil
}

// convertRun greedily splits a run of pinyin letters into valid syllables
// and converts each one. A remainder that matches no syllable is the known
// failure mode (for example a vowel-final syllable missing its
// disambiguating apostrophe).
func convertRun(run string) (string, error) {
	runes := []rune(strings.ToLower(run))
	var b strings.Builder

	for i := 0; i < len(runes); {
		matched := 0
		var matchedZhuyin string
		max := maxSyllableLen
		if rem := len(runes) - i; rem < max {
			max = rem
		}
		for n := max; n >= 1; n-- {
			candidate := string(runes[i : i+n])
			base, tone := stripMarks(candidate)
			z, ok := encodeBase(base)
			if !ok {
				continue
			}
			matched = n
			matchedZhuyin = applyTone(z, tone)
			break
		}
		if matched == 0 {
			return "", fmt.Errorf("unparseable pinyin at %q in %q", string(runes[i:]), run)
		}
		b.WriteString(matchedZhuyin)
		i += matched
	}

	return b.String(), nil
}

// isPinyinLetter reports whether r can be part of a pinyin syllable.
func isPinyinLetter(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	if r == 'ü' || r == 'Ü' {
		return true
	}
	if _, ok := markedVowels[unicode.ToLower(r)]; ok {
		return true
	}
	return false
}
