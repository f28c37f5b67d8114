package phonetic

import "strings"

// markedVowels maps each tone-marked vowel to its bare vowel and tone.
var markedVowels = map[rune]struct {
	base rune
	tone int
}{
	'ā': {'a', 1}, 'á': {'a', 2}, 'ǎ': {'a', 3}, 'à': {'a', 4},
	'ē': {'e', 1}, 'é': {'e', 2}, 'ě': {'e', 3}, 'è': {'e', 4},
	'ī': {'i', 1}, 'í': {'i', 2}, 'ǐ': {'i', 3}, 'ì': {'i', 4},
	'ō': {'o', 1}, 'ó': {'o', 2}, 'ǒ': {'o', 3}, 'ò': {'o', 4},
	'ū': {'u', 1}, 'ú': {'u', 2}, 'ǔ': {'u', 3}, 'ù': {'u', 4},
	'ǖ': {'ü', 1}, 'ǘ': {'ü', 2}, 'ǚ': {'ü', 3}, 'ǜ': {'ü', 4},
}

// vowelMarks is the reverse table, indexed by bare vowel then tone.
var vowelMarks = map[rune][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

// stripMarks converts a tone-marked syllable to its toneless base and tone.
// An unmarked syllable is neutral tone.
func stripMarks(syllable string) (string, int) {
	tone := 5
	var b strings.Builder
	for _, r := range syllable {
		if m, ok := markedVowels[r]; ok {
			b.WriteRune(m.base)
			tone = m.tone
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), tone
}

// markSyllable renders a toneless base with its tone mark placed by the
// standard rule: a first, then e, then the o of ou, otherwise the last vowel.
func markSyllable(base string, tone int) string {
	if tone < 1 || tone > 4 {
		return base
	}

	runes := []rune(base)
	markAt := -1
	for i, r := range runes {
		switch r {
		case 'a':
			markAt = i
		case 'e':
			if markAt < 0 || runes[markAt] != 'a' {
				markAt = i
			}
		case 'o', 'i', 'u', 'ü':
			if markAt < 0 || (runes[markAt] != 'a' && runes[markAt] != 'e' && !(runes[markAt] == 'o' && r != 'o')) {
				markAt = i
			}
		}
	}
	if markAt < 0 {
		return base
	}
	runes[markAt] = vowelMarks[runes[markAt]][tone-1]
	return string(runes)
}

// MarksFromNumbers renders a tone-numbered pinyin field ("chuan2 tong3") as
// tone-marked pinyin ("chuán tǒng").
func MarksFromNumbers(numbers string) string {
	syllables := strings.Fields(numbers)
	marked := make([]string, len(syllables))
	for i, s := range syllables {
		base, tone := splitNumbered(s)
		marked[i] = markSyllable(normalizeBase(base), tone)
	}
	return strings.Join(marked, " ")
}
