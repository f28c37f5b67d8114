package phonetic

import (
	"strings"
	"testing"

	"codeberg.org/snonux/hanki/internal/dict"
)

func TestEntryZhuyinSegmentCountMatchesSyllables(t *testing.T) {
	tests := []struct {
		numbers   string
		syllables int
	}{
		{"ni3", 1},
		{"ni3 hao3", 2},
		{"ji1 jin1 hui4", 3},
		{"kan4 qi3 lai5", 3},
	}

	for _, tt := range tests {
		e := &dict.Entry{PinyinNumbers: tt.numbers}
		reading := EntryZhuyin(e)
		if got := len(strings.Split(reading, ",")); got != tt.syllables {
			t.Errorf("EntryZhuyin(%q) = %q: %d segments, want %d", tt.numbers, reading, got, tt.syllables)
		}
	}
}

func TestEntryZhuyinPassthroughUnconvertible(t *testing.T) {
	e := &dict.Entry{PinyinNumbers: "ni3 xx5"}
	reading := EntryZhuyin(e)
	if reading != "ㄋㄧˇ,xx5" {
		t.Errorf("Expected unconvertible syllable passed through, got %q", reading)
	}
}

func TestEntryReadingNotations(t *testing.T) {
	e := &dict.Entry{PinyinNumbers: "shi2 shang4"}

	if got := EntryReading(e, Zhuyin); got != "ㄕˊ,ㄕㄤˋ" {
		t.Errorf("Zhuyin reading = %q", got)
	}
	if got := EntryReading(e, Pinyin); got != "shí shàng" {
		t.Errorf("Pinyin reading = %q", got)
	}
}

func TestWordReadingJoinsMultipleEntries(t *testing.T) {
	entries := []*dict.Entry{
		{PinyinNumbers: "hao3"},
		{PinyinNumbers: "hao4"},
	}

	if got := WordReading(entries, Zhuyin); got != "ㄏㄠˇ,ㄏㄠˋ" {
		t.Errorf("WordReading zhuyin = %q", got)
	}
	if got := WordReading(entries, Pinyin); got != "hǎo hào" {
		t.Errorf("WordReading pinyin = %q", got)
	}
}

func TestWordReadingEmptyEntries(t *testing.T) {
	if got := WordReading(nil, Zhuyin); got != "" {
		t.Errorf("Expected empty reading for no entries, got %q", got)
	}
}

func TestNotationValid(t *testing.T) {
	if !Zhuyin.Valid() || !Pinyin.Valid() {
		t.Error("Built-in notations must be valid")
	}
	if Notation("ipa").Valid() {
		t.Error("Unknown notation must be invalid")
	}
}
