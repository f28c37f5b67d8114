package tokenizer

import (
	"strings"
	"testing"

	"codeberg.org/snonux/hanki/internal/dict"
)

func testDictionary() *dict.Dictionary {
	d := dict.New()
	d.Add(&dict.Entry{Traditional: "你", Simplified: "你", PinyinNumbers: "ni3", English: []string{"you"}})
	d.Add(&dict.Entry{Traditional: "你好", Simplified: "你好", PinyinNumbers: "ni3 hao3", English: []string{"hello"}})
	d.Add(&dict.Entry{Traditional: "今天", Simplified: "今天", PinyinNumbers: "jin1 tian1", English: []string{"today"}})
	d.Add(&dict.Entry{Traditional: "看起來", Simplified: "看起来", PinyinNumbers: "kan4 qi3 lai5", English: []string{"to seem"}})
	d.Add(&dict.Entry{Traditional: "很", Simplified: "很", PinyinNumbers: "hen3", English: []string{"very"}})
	d.Add(&dict.Entry{Traditional: "時尚", Simplified: "时尚", PinyinNumbers: "shi2 shang4", English: []string{"fashion"}})
	return d
}

func concat(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

func TestTokenizeLosslessPartition(t *testing.T) {
	d := testDictionary()

	inputs := []string{
		"你好",
		"你今天看起來很*時尚*",
		"hello world",
		"你好, how are 你?",
		"",
		"！！！",
		"你好你好你好",
	}

	for _, input := range inputs {
		tokens := Tokenize(d, input)
		if got := concat(tokens); got != input {
			t.Errorf("Tokenize(%q) concatenation = %q, partition is lossy", input, got)
		}
	}
}

func TestTokenizeEmphasisDelimiters(t *testing.T) {
	d := testDictionary()

	tokens := Tokenize(d, "你今天看起來很*時尚*")

	var stars int
	var starFlanked bool
	for i, tok := range tokens {
		if tok.Text == "*" {
			if tok.Entries != nil {
				t.Error("Delimiter token must have nil entries")
			}
			stars++
			if i+1 < len(tokens) && tokens[i+1].Text == "時尚" {
				starFlanked = true
			}
		}
	}
	if stars != 2 {
		t.Errorf("Expected 2 delimiter tokens, got %d", stars)
	}
	if !starFlanked {
		t.Error("Expected a delimiter token directly before 時尚")
	}
}

func TestTokenizeSingleWord(t *testing.T) {
	d := testDictionary()

	tokens := Tokenize(d, "你好")
	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d", len(tokens))
	}
	if !tokens[0].IsWord() {
		t.Error("Expected a word token with dictionary entries")
	}
}

func TestTokenizeNonMandarin(t *testing.T) {
	d := testDictionary()

	tokens := Tokenize(d, "abc")
	if len(tokens) != 3 {
		t.Fatalf("Expected one token per character, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Entries != nil {
			t.Errorf("Expected nil entries for %q", tok.Text)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	d := testDictionary()

	if tokens := Tokenize(d, ""); len(tokens) != 0 {
		t.Errorf("Expected no tokens for empty input, got %d", len(tokens))
	}
}

func TestSentenceHasMandarin(t *testing.T) {
	d := testDictionary()

	if s := NewSentence(d, "你好"); !s.HasMandarin() {
		t.Error("Expected HasMandarin for 你好")
	}
	if s := NewSentence(d, "hello!"); s.HasMandarin() {
		t.Error("Expected no Mandarin in 'hello!'")
	}
}

func TestTokenizeRepeatedWordAdvancesCursor(t *testing.T) {
	d := testDictionary()

	tokens := Tokenize(d, "你好你好")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Text != "你好" || !tok.IsWord() {
			t.Errorf("Unexpected token %+v", tok)
		}
	}
}
