// Package testutil provides shared stubs for the service collaborators.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/snonux/hanki/internal/dict"
	"codeberg.org/snonux/hanki/internal/related"
)

// MockTranslator returns canned translations
type MockTranslator struct {
	Translations map[string]string
	Err          error
	Calls        []string
}

func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return "", m.Err
	}
	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	return "translation of " + text, nil
}

// MockTransliterator returns canned pinyin readings
type MockTransliterator struct {
	Readings map[string]string
	Err      error
	Calls    []string
}

func (m *MockTransliterator) Transliterate(ctx context.Context, text string) (string, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return "", m.Err
	}
	if reading, ok := m.Readings[text]; ok {
		return reading, nil
	}
	return "", fmt.Errorf("no canned reading for %q", text)
}

// MockSpeech writes a fake audio file instead of calling a TTS service
type MockSpeech struct {
	Err   error
	mu    sync.Mutex
	Calls []string
}

func (m *MockSpeech) GenerateAudio(ctx context.Context, text, outputFile string) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(outputFile, []byte("fake audio for "+text), 0644)
}

func (m *MockSpeech) Name() string       { return "mock" }
func (m *MockSpeech) IsAvailable() error { return nil }

// MockSuggester returns canned related words
type MockSuggester struct {
	Suggestions map[string][]related.SimilarWord
	Err         error
	Calls       []string
}

func (m *MockSuggester) Suggest(ctx context.Context, word string) ([]related.SimilarWord, error) {
	m.Calls = append(m.Calls, word)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Suggestions[word], nil
}

// TestDictionary builds a small in-memory dictionary shared by the card and
// batch tests.
func TestDictionary() *dict.Dictionary {
	d := dict.New()
	d.Add(&dict.Entry{Traditional: "你", Simplified: "你", PinyinNumbers: "ni3", English: []string{"you"}})
	d.Add(&dict.Entry{Traditional: "你好", Simplified: "你好", PinyinNumbers: "ni3 hao3", English: []string{"hello", "hi"}})
	d.Add(&dict.Entry{Traditional: "今天", Simplified: "今天", PinyinNumbers: "jin1 tian1", English: []string{"today"}})
	d.Add(&dict.Entry{Traditional: "看起來", Simplified: "看起来", PinyinNumbers: "kan4 qi3 lai5", English: []string{"to seem"}})
	d.Add(&dict.Entry{Traditional: "很", Simplified: "很", PinyinNumbers: "hen3", English: []string{"very"}})
	d.Add(&dict.Entry{Traditional: "時尚", Simplified: "时尚", PinyinNumbers: "shi2 shang4", English: []string{"fashion"}})
	d.Add(&dict.Entry{Traditional: "基金會", Simplified: "基金会", PinyinNumbers: "ji1 jin1 hui4", English: []string{"foundation"}})
	d.Add(&dict.Entry{Traditional: "句子", Simplified: "句子", PinyinNumbers: "ju4 zi5", English: []string{"sentence"}})
	return d
}
