package azure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testClient(translatorURL, ttsURL string) *Client {
	c := NewClient(Config{
		Region:        "uksouth",
		TranslatorKey: "translator-key",
		SpeechKey:     "speech-key",
		VoiceName:     "zh-TW-YunJheNeural",
		Locale:        "zh-TW",
		Language:      "zh-Hant",
		FromScript:    "Hant",
	}, zerolog.Nop())
	if translatorURL != "" {
		c.translatorURL = translatorURL
	}
	if ttsURL != "" {
		c.ttsURL = ttsURL
	}
	return c
}

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Ocp-Apim-Subscription-Key") != "translator-key" {
			t.Error("Missing subscription key header")
		}
		if !strings.Contains(r.URL.RawQuery, "to=en") {
			t.Errorf("Expected to=en in query, got %s", r.URL.RawQuery)
		}
		w.Write([]byte(`[{"translations":[{"text":"Hello","to":"en"}]}]`))
	}))
	defer server.Close()

	c := testClient(server.URL, "")
	got, err := c.Translate(context.Background(), "你好")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "Hello" {
		t.Errorf("Translate = %q, want Hello", got)
	}
}

func TestTransliterate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.RawQuery
		if !strings.Contains(q, "language=zh-Hant") || !strings.Contains(q, "fromScript=Hant") || !strings.Contains(q, "toScript=Latn") {
			t.Errorf("Unexpected query: %s", q)
		}
		w.Write([]byte(`[{"text":"nǐ hǎo","script":"Latn"}]`))
	}))
	defer server.Close()

	c := testClient(server.URL, "")
	got, err := c.Transliterate(context.Background(), "你好")
	if err != nil {
		t.Fatalf("Transliterate failed: %v", err)
	}
	if got != "nǐ hǎo" {
		t.Errorf("Transliterate = %q, want nǐ hǎo", got)
	}
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"translations":[{"text":"Hello"}]}]`))
	}))
	defer server.Close()

	c := testClient(server.URL, "")
	got, err := c.Translate(context.Background(), "你好")
	if err != nil {
		t.Fatalf("Translate failed after retry: %v", err)
	}
	if got != "Hello" {
		t.Errorf("Translate = %q", got)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestRetryHonoursContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(server.URL, "")
	if _, err := c.Translate(ctx, "你好"); err == nil {
		t.Error("Expected error with cancelled context")
	}
}

func TestSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/ssml+xml" {
			t.Error("Expected SSML content type")
		}
		if r.Header.Get("X-Microsoft-OutputFormat") == "" {
			t.Error("Missing output format header")
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	c := testClient("", server.URL)
	audio, err := c.Synthesize(context.Background(), "你好")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("Unexpected audio payload: %q", audio)
	}
}

func TestVoicesFilterByLocale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"Name":"A","ShortName":"zh-TW-YunJheNeural","Locale":"zh-TW"},
			{"Name":"B","ShortName":"zh-CN-XiaoxiaoNeural","Locale":"zh-CN"}
		]`))
	}))
	defer server.Close()

	c := testClient("", server.URL)
	voices, err := c.Voices(context.Background(), "zh-TW")
	if err != nil {
		t.Fatalf("Voices failed: %v", err)
	}
	if len(voices) != 1 || voices[0].ShortName != "zh-TW-YunJheNeural" {
		t.Errorf("Unexpected voices: %+v", voices)
	}
}
