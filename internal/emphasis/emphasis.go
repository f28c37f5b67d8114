// Package emphasis re-inserts the user-placed * emphasis markers as paired
// HTML spans on rendered card text. Odd occurrences open a span, even
// occurrences close it; one boolean flag is carried across the whole
// sequence, so an odd total leaves the final span open.
package emphasis

import (
	"strings"

	"codeberg.org/snonux/hanki/internal/tokenizer"
)

// Delimiter is the marker character users place around emphasized spans.
const Delimiter = "*"

const (
	openSpan  = "<span class=starred>"
	closeSpan = "</span>"
)

// toggle is the one shared open/close state machine. Both the token-stream
// and character-stream renderers go through it so they cannot diverge.
type toggle struct {
	open bool
}

func (t *toggle) replacement() string {
	defer func() { t.open = !t.open }()
	if t.open {
		return closeSpan
	}
	return openSpan
}

// Render walks tokens in order, emitting token text unchanged and replacing
// each delimiter token with opening or closing span markup.
func Render(tokens []tokenizer.Token) string {
	var b strings.Builder
	var tg toggle
	for _, tok := range tokens {
		if tok.Text == Delimiter {
			b.WriteString(tg.replacement())
			continue
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// RenderPlain drops delimiter tokens entirely. This form is what gets sent
// to the translation, transliteration and speech services, which must never
// see the marker or its markup.
func RenderPlain(tokens []tokenizer.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Text == Delimiter {
			continue
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// RenderReading applies the identical toggle to a character stream (the
// phonetic reading string) so reading spans line up with the sentence spans.
func RenderReading(reading string) string {
	var b strings.Builder
	var tg toggle
	for _, r := range reading {
		if string(r) == Delimiter {
			b.WriteString(tg.replacement())
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
