package internal

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Version is the hanki release version.
const Version = "0.3.0"

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NoteTimestamp returns the nanosecond wall-clock timestamp string used as the
// first field of every note. It is a dedup/sort key for Anki, nothing more.
func NoteTimestamp() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// AudioFileName builds a collision-resistant media filename from the source
// text: the sanitized text padded or truncated to 10 runes, a 5-character
// random salt, and the mp3 extension. Two rows with identical text never map
// to the same file.
func AudioFileName(text string) string {
	base := []rune(SanitizeFilename(text))
	if len(base) > 10 {
		base = base[:10]
	}
	for len(base) < 10 {
		base = append(base, '-')
	}

	salt := make([]byte, 5)
	for i := range salt {
		salt[i] = saltChars[rand.Intn(len(saltChars))]
	}

	return fmt.Sprintf("%s%s.mp3", string(base), salt)
}

// SanitizeFilename keeps only filename-safe runes. Han characters stay as-is
// so media names remain recognizable inside the package.
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Han, r):
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
