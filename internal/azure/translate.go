package azure

import (
	"context"
	"encoding/json"
	"fmt"
)

type textPayload struct {
	Text string `json:"text"`
}

type translateResult struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

type transliterateResult struct {
	Text   string `json:"text"`
	Script string `json:"script"`
}

// Translate translates Mandarin text to English.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	url := c.translatorURL + "/translate?api-version=3.0&to=en"

	body, err := c.postTranslator(ctx, url, []textPayload{{Text: text}})
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	c.log.Trace().RawJSON("response", body).Msg("translation response")

	var results []translateResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(results) == 0 || len(results[0].Translations) == 0 {
		return "", fmt.Errorf("translation response contained no translations")
	}

	translation := results[0].Translations[0].Text
	c.log.Debug().Str("text", text).Str("translation", translation).Msg("translated")
	return translation, nil
}

// Transliterate converts Mandarin text in the configured script to
// tone-marked pinyin.
func (c *Client) Transliterate(ctx context.Context, text string) (string, error) {
	url := fmt.Sprintf("%s/transliterate?api-version=3.0&language=%s&fromScript=%s&toScript=Latn",
		c.translatorURL, c.config.Language, c.config.FromScript)

	body, err := c.postTranslator(ctx, url, []textPayload{{Text: text}})
	if err != nil {
		return "", fmt.Errorf("transliteration request failed: %w", err)
	}
	c.log.Trace().RawJSON("response", body).Msg("transliteration response")

	var results []transliterateResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("failed to decode transliteration response: %w", err)
	}
	if len(results) == 0 || results[0].Text == "" {
		return "", fmt.Errorf("transliteration response was empty")
	}

	c.log.Debug().Str("text", text).Str("pinyin", results[0].Text).Msg("transliterated")
	return results[0].Text, nil
}
