package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const outputFormat = "audio-48khz-192kbitrate-mono-mp3"

// Synthesize renders text as spoken Mandarin mp3 audio using the configured
// neural voice.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ssml := fmt.Sprintf(`<speak version='1.0' xml:lang='%[1]s'>
	<voice xml:lang='%[1]s' name='%[2]s'>%[3]s</voice>
</speak>`, c.config.Locale, c.config.VoiceName, text)

	body, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.ttsURL+"/cognitiveservices/v1", strings.NewReader(ssml))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.config.SpeechKey)
		req.Header.Set("Content-Type", "application/ssml+xml")
		req.Header.Set("X-Microsoft-OutputFormat", outputFormat)
		req.Header.Set("User-Agent", "hanki")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis request failed: %w", err)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("speech synthesis returned no audio data")
	}
	c.log.Debug().Str("text", text).Int("bytes", len(body)).Msg("synthesized audio")
	return body, nil
}

// Voice describes one entry of the speech service voice catalogue.
type Voice struct {
	Name      string `json:"Name"`
	ShortName string `json:"ShortName"`
	Locale    string `json:"Locale"`
	Gender    string `json:"Gender"`
	VoiceType string `json:"VoiceType"`
}

// Voices lists the available neural voices, optionally filtered by locale.
func (c *Client) Voices(ctx context.Context, locale string) ([]Voice, error) {
	body, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.ttsURL+"/cognitiveservices/voices/list", nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.config.SpeechKey)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("voice list request failed: %w", err)
	}

	var voices []Voice
	if err := json.Unmarshal(body, &voices); err != nil {
		return nil, fmt.Errorf("failed to decode voice list: %w", err)
	}

	if locale == "" {
		return voices, nil
	}
	var filtered []Voice
	for _, v := range voices {
		if v.Locale == locale {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}
