// Package classifier provides an HTTP client for the external sentiment
// classification service. The service receives free text and returns a
// sentiment verdict with a confidence score and detected emotions.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/moodcast/backend/internal/models"
)

// Result is the classification verdict for a piece of text.
type Result struct {
	Sentiment  models.Sentiment      `json:"sentiment"`
	Confidence float64               `json:"confidence"`
	Emotions   []models.EmotionScore `json:"emotions"`
}

// Client talks to the sentiment classification service.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a classifier client for the given base URL.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Classify sends text to the classification service and returns the verdict.
func (c *Client) Classify(ctx context.Context, text string) (*Result, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/classify", c.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("classifier error (status %d): %s", resp.StatusCode, string(body))
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	// Normalize so downstream code never sees an unknown label.
	if !result.Sentiment.Valid() {
		result.Sentiment = models.SentimentNeutral
	}
	if result.Emotions == nil {
		result.Emotions = []models.EmotionScore{}
	}

	return &result, nil
}
