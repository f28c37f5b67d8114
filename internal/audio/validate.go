package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateMandarinText checks that text is speakable: non-empty, contains at
// least one Han character and none of the emphasis markup that must never
// reach a speech service.
func ValidateMandarinText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if strings.Contains(trimmed, "*") || strings.Contains(trimmed, "<span") {
		return fmt.Errorf("text contains emphasis markup: %q", text)
	}

	for _, r := range trimmed {
		if unicode.Is(unicode.Han, r) {
			return nil
		}
	}
	return fmt.Errorf("text contains no Mandarin characters: %q", text)
}
