// Package dict loads a CC-CEDICT dictionary file and provides word lookup,
// forward longest-match segmentation and script classification for Mandarin
// text. Entries are owned by the Dictionary; callers hold pointers into the
// index and must not mutate them.
package dict

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Script identifies which writing system a piece of text belongs to.
type Script int

const (
	Other Script = iota
	Mandarin
)

// ScriptVariant selects which CC-CEDICT headword column is treated as the
// primary script for segmentation and card rendering.
type ScriptVariant string

const (
	Traditional ScriptVariant = "traditional"
	Simplified  ScriptVariant = "simplified"
)

// DisplayName returns the variant name used in prompts sent to the
// related-word suggester.
func (v ScriptVariant) DisplayName() string {
	if v == Simplified {
		return "Simplified Chinese"
	}
	return "Traditional Chinese"
}

// Language returns the BCP-47 language tag for the variant.
func (v ScriptVariant) Language() string {
	if v == Simplified {
		return "zh-Hans"
	}
	return "zh-Hant"
}

// FromScript returns the transliteration source script code for the variant.
func (v ScriptVariant) FromScript() string {
	if v == Simplified {
		return "Hans"
	}
	return "Hant"
}

// Entry is one CC-CEDICT record.
type Entry struct {
	Traditional   string
	Simplified    string
	PinyinNumbers string   // tone-numbered syllables, space separated: "chuan2 tong3"
	English       []string // gloss strings
}

// Headword returns the entry's text in the requested script variant.
func (e *Entry) Headword(variant ScriptVariant) string {
	if variant == Simplified {
		return e.Simplified
	}
	return e.Traditional
}

// Dictionary is the in-memory CC-CEDICT index, keyed by both script variants.
type Dictionary struct {
	entries    map[string][]*Entry
	maxWordLen int // in runes, over all headwords
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string][]*Entry)}
}

// Load reads a CC-CEDICT file from path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()

	d := New()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		d.addLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	if d.Size() == 0 {
		return nil, fmt.Errorf("dictionary file %s contained no entries", path)
	}
	return d, nil
}

// addLine parses one CC-CEDICT line:
//
//	傳統 传统 [chuan2 tong3] /tradition/convention/
//
// Comment lines and lines that do not match are skipped.
func (d *Dictionary) addLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	bracket := strings.Index(line, "[")
	closeBracket := strings.Index(line, "]")
	if bracket < 0 || closeBracket < bracket {
		return
	}

	head := strings.Fields(line[:bracket])
	if len(head) != 2 {
		return
	}

	rest := line[closeBracket+1:]
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return
	}
	glosses := strings.Split(strings.Trim(rest[slash:], "/ "), "/")

	d.Add(&Entry{
		Traditional:   head[0],
		Simplified:    head[1],
		PinyinNumbers: strings.TrimSpace(line[bracket+1 : closeBracket]),
		English:       glosses,
	})
}

// Add indexes an entry under both headwords.
func (d *Dictionary) Add(e *Entry) {
	d.entries[e.Traditional] = append(d.entries[e.Traditional], e)
	if e.Simplified != e.Traditional {
		d.entries[e.Simplified] = append(d.entries[e.Simplified], e)
	}
	if n := len([]rune(e.Traditional)); n > d.maxWordLen {
		d.maxWordLen = n
	}
	if n := len([]rune(e.Simplified)); n > d.maxWordLen {
		d.maxWordLen = n
	}
}

// Lookup returns all entries matching text in either script variant, in load
// order. A nil result means no match.
func (d *Dictionary) Lookup(text string) []*Entry {
	return d.entries[text]
}

// Size returns the number of indexed headwords.
func (d *Dictionary) Size() int {
	return len(d.entries)
}

// Segment splits text into the ordered list of dictionary-recognized words it
// contains, using forward longest-match. Runes not covered by any headword
// are skipped; the tokenizer re-inserts them afterwards.
func (d *Dictionary) Segment(text string) []string {
	runes := []rune(text)
	var words []string

	for i := 0; i < len(runes); {
		matched := 0
		max := d.maxWordLen
		if rem := len(runes) - i; rem < max {
			max = rem
		}
		for n := max; n >= 1; n-- {
			if _, ok := d.entries[string(runes[i:i+n])]; ok {
				matched = n
				break
			}
		}
		if matched == 0 {
			i++
			continue
		}
		words = append(words, string(runes[i:i+matched]))
		i += matched
	}

	return words
}

// Classify reports whether text is Mandarin: at least one Han rune and no
// letters from any other script. Digits, punctuation and whitespace are
// neutral.
func Classify(text string) Script {
	sawHan := false
	for _, r := range strings.TrimSpace(text) {
		if unicode.Is(unicode.Han, r) {
			sawHan = true
			continue
		}
		if unicode.IsLetter(r) {
			return Other
		}
	}
	if sawHan {
		return Mandarin
	}
	return Other
}
