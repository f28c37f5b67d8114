package internal

import (
	"strings"
	"testing"
)

func TestAudioFileName(t *testing.T) {
	name := AudioFileName("你好")

	if !strings.HasSuffix(name, ".mp3") {
		t.Errorf("Expected .mp3 suffix, got '%s'", name)
	}

	// 10 base runes + 5 salt chars + ".mp3"
	if got := len([]rune(name)); got != 19 {
		t.Errorf("Expected 19 runes, got %d in '%s'", got, name)
	}

	if !strings.HasPrefix(name, "你好--------") {
		t.Errorf("Expected padded text prefix, got '%s'", name)
	}
}

func TestAudioFileNameCollisionResistance(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := AudioFileName("你好")
		if seen[name] {
			t.Fatalf("Duplicate filename generated: %s", name)
		}
		seen[name] = true
	}
}

func TestAudioFileNameTruncatesLongText(t *testing.T) {
	name := AudioFileName("我的頭髮太厚了我要打薄一點")

	if got := len([]rune(name)); got != 19 {
		t.Errorf("Expected 19 runes, got %d in '%s'", got, name)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"你好", "你好"},
		{"hello", "hello"},
		{"你好 world", "你好_world"},
		{"時尚*了", "時尚_了"},
		{"a/b\\c", "a_b_c"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNoteTimestamp(t *testing.T) {
	ts := NoteTimestamp()
	if len(ts) < 18 {
		t.Errorf("Expected nanosecond-resolution timestamp, got '%s'", ts)
	}
	for _, r := range ts {
		if r < '0' || r > '9' {
			t.Errorf("Timestamp contains non-digit: '%s'", ts)
		}
	}
}
