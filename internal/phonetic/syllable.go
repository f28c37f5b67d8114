package phonetic

import (
	"strings"
)

// zhuyinInitials maps pinyin initials to their zhuyin symbol. Two-letter
// initials must be matched before single letters.
var zhuyinInitials = map[string]string{
	"zh": "ㄓ", "ch": "ㄔ", "sh": "ㄕ",
	"b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ",
	"g": "ㄍ", "k": "ㄎ", "h": "ㄏ",
	"j": "ㄐ", "q": "ㄑ", "x": "ㄒ",
	"r": "ㄖ", "z": "ㄗ", "c": "ㄘ", "s": "ㄙ",
}

var zhuyinFinals = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ",
	"ai": "ㄞ", "ei": "ㄟ", "ao": "ㄠ", "ou": "ㄡ",
	"an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ",
	"ong": "ㄨㄥ", "er": "ㄦ",
	"i": "ㄧ", "ia": "ㄧㄚ", "io": "ㄧㄛ", "ie": "ㄧㄝ",
	"iai": "ㄧㄞ", "iao": "ㄧㄠ", "iu": "ㄧㄡ", "iou": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ",
	"iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ",
	"ui": "ㄨㄟ", "uei": "ㄨㄟ", "uan": "ㄨㄢ", "un": "ㄨㄣ",
	"uen": "ㄨㄣ", "uang": "ㄨㄤ", "ueng": "ㄨㄥ",
	"ü": "ㄩ", "üe": "ㄩㄝ", "üan": "ㄩㄢ", "ün": "ㄩㄣ",
}

// Syllables where the vowel is only orthographic, plus the bare erhua "r".
var zhuyinWhole = map[string]string{
	"zhi": "ㄓ", "chi": "ㄔ", "shi": "ㄕ", "ri": "ㄖ",
	"zi": "ㄗ", "ci": "ㄘ", "si": "ㄙ",
	"er": "ㄦ", "r": "ㄦ",
}

var zhuyinTones = map[int]string{2: "ˊ", 3: "ˇ", 4: "ˋ"}

// encodeBase converts one toneless pinyin syllable to zhuyin symbols.
// Returns false for anything that is not a well-formed syllable.
func encodeBase(base string) (string, bool) {
	base = normalizeBase(base)
	if base == "" {
		return "", false
	}
	if z, ok := zhuyinWhole[base]; ok {
		return z, true
	}

	// y- and w- spellings are orthographic variants of the i/u/ü finals.
	switch {
	case strings.HasPrefix(base, "yu"):
		base = "ü" + base[2:]
	case strings.HasPrefix(base, "yi"):
		base = "i" + base[2:]
	case strings.HasPrefix(base, "y"):
		base = "i" + base[1:]
	case strings.HasPrefix(base, "wu"):
		base = "u" + base[2:]
	case strings.HasPrefix(base, "w"):
		base = "u" + base[1:]
	}

	initial, final := "", base
	for _, prefix := range []string{"zh", "ch", "sh"} {
		if strings.HasPrefix(base, prefix) {
			initial, final = prefix, base[len(prefix):]
		}
	}
	if initial == "" {
		if _, ok := zhuyinInitials[base[:1]]; ok {
			initial, final = base[:1], base[1:]
		}
	}

	// After j/q/x the written u is actually ü.
	if initial == "j" || initial == "q" || initial == "x" {
		if strings.HasPrefix(final, "u") && !strings.HasPrefix(final, "ü") {
			final = "ü" + final[1:]
		}
	}

	if final == "" {
		return "", false
	}
	z, ok := zhuyinFinals[final]
	if !ok {
		return "", false
	}
	return zhuyinInitials[initial] + z, true
}

// normalizeBase lowercases and folds the CC-CEDICT ü spellings (u:, v).
func normalizeBase(base string) string {
	base = strings.ToLower(base)
	base = strings.ReplaceAll(base, "u:", "ü")
	base = strings.ReplaceAll(base, "v", "ü")
	return base
}

// splitNumbered splits a tone-numbered syllable like "chuan2" into its
// toneless base and tone. A missing number means neutral tone.
func splitNumbered(syllable string) (string, int) {
	if syllable == "" {
		return "", 5
	}
	last := syllable[len(syllable)-1]
	if last >= '1' && last <= '5' {
		return syllable[:len(syllable)-1], int(last - '0')
	}
	return syllable, 5
}

// applyTone decorates a zhuyin syllable with its tone mark: nothing for the
// first tone, a trailing mark for tones 2-4 and a leading dot for the
// neutral tone.
func applyTone(zhuyin string, tone int) string {
	if tone == 5 {
		return "˙" + zhuyin
	}
	return zhuyin + zhuyinTones[tone]
}

// EncodeZhuyin converts one tone-numbered pinyin syllable to zhuyin.
// Returns false when the syllable has no zhuyin equivalent.
func EncodeZhuyin(syllable string) (string, bool) {
	base, tone := splitNumbered(syllable)
	z, ok := encodeBase(base)
	if !ok {
		return "", false
	}
	return applyTone(z, tone), true
}
