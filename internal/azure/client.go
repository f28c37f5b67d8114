// Package azure is the REST client for the Azure Cognitive Services used by
// hanki: text translation, transliteration and neural speech synthesis. All
// calls share one HTTP client, one circuit breaker and one retry policy.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

const translatorBaseURL = "https://api.cognitive.microsofttranslator.com"

// Config holds the Azure credentials and regional settings.
type Config struct {
	Region        string
	TranslatorKey string
	SpeechKey     string
	VoiceName     string // e.g. "zh-TW-YunJheNeural"
	Locale        string // e.g. "zh-TW"
	Language      string // transliteration language, e.g. "zh-Hant"
	FromScript    string // transliteration source script, e.g. "Hant"
}

// Client talks to the Azure endpoints. Safe for concurrent use.
type Client struct {
	config        Config
	httpClient    *http.Client
	breaker       *gobreaker.CircuitBreaker
	log           zerolog.Logger
	translatorURL string
	ttsURL        string
}

// NewClient creates a client for the configured region.
func NewClient(config Config, log zerolog.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "azure",
			Timeout: 60 * time.Second,
		}),
		log:           log.With().Str("client", "azure").Logger(),
		translatorURL: translatorBaseURL,
		ttsURL:        fmt.Sprintf("https://%s.tts.speech.microsoft.com", config.Region),
	}
}

// retryPolicy mirrors the per-call policy: exponential from 1s with jitter,
// delays capped at 120s.
func retryPolicy(ctx context.Context) backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second
	policy.MaxInterval = 120 * time.Second
	policy.MaxElapsedTime = 15 * time.Minute
	return backoff.WithContext(policy, ctx)
}

// do runs one request under the retry policy and circuit breaker. Any
// non-2xx status counts as retryable. build is invoked per attempt so the
// request body is fresh each time.
func (c *Client) do(ctx context.Context, build func() (*http.Request, error)) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(err)
		}

		result, err := c.breaker.Execute(func() (interface{}, error) {
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				c.log.Debug().Int("status", resp.StatusCode).Str("url", req.URL.Path).
					Msg("retryable response status")
				return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data)
			}
			return data, nil
		})
		if err != nil {
			return err
		}
		body = result.([]byte)
		return nil
	}

	if err := backoff.Retry(operation, retryPolicy(ctx)); err != nil {
		return nil, err
	}
	return body, nil
}

// postTranslator posts a JSON payload to a translator endpoint path.
func (c *Client) postTranslator(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	return c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.config.TranslatorKey)
		req.Header.Set("Ocp-Apim-Subscription-Region", c.config.Region)
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
		return req, nil
	})
}
