package phonetic

import (
	"strings"

	"codeberg.org/snonux/hanki/internal/dict"
)

// Notation selects which phonetic notation is rendered on cards.
type Notation string

const (
	Zhuyin Notation = "zhuyin"
	Pinyin Notation = "pinyin"
)

// Valid reports whether n is a supported notation.
func (n Notation) Valid() bool {
	return n == Zhuyin || n == Pinyin
}

// EntryZhuyin derives the zhuyin reading of one dictionary entry by
// converting its tone-numbered pinyin syllable by syllable. A syllable with
// no zhuyin equivalent is passed through unchanged, never dropped.
func EntryZhuyin(e *dict.Entry) string {
	syllables := strings.Fields(e.PinyinNumbers)
	parts := make([]string, len(syllables))
	for i, s := range syllables {
		z, ok := EncodeZhuyin(s)
		if !ok {
			z = s
		}
		parts[i] = z
	}
	return strings.Join(parts, ",")
}

// EntryPinyin derives the tone-marked pinyin reading of one entry.
func EntryPinyin(e *dict.Entry) string {
	return MarksFromNumbers(e.PinyinNumbers)
}

// EntryReading derives an entry's reading in the requested notation.
func EntryReading(e *dict.Entry, notation Notation) string {
	if notation == Pinyin {
		return EntryPinyin(e)
	}
	return EntryZhuyin(e)
}

// WordReading derives the display reading of a word token from all of its
// matched entries. Multiple entries are joined with a comma for zhuyin and
// a space for pinyin. An empty result means the token has no extractable
// phonetic information.
func WordReading(entries []*dict.Entry, notation Notation) string {
	sep := ","
	if notation == Pinyin {
		sep = " "
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if r := EntryReading(e, notation); r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, sep)
}
