package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const (
	openaiImagesURL    = "https://api.openai.com/v1/images/generations"
	openaiImageSize    = "256x256"
	openaiImageCount   = 1
	openaiMaxRetries   = 3
	openaiInitialDelay = 1 * time.Second
)

// OpenAIClient calls the OpenAI image generation API.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type openaiImageRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type openaiImageResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type openaiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// NewOpenAIClient creates a new OpenAI images client
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: openaiImagesURL,
		client:  &http.Client{},
	}
}

// GenerateImage renders one image for the prompt and returns its URL.
// Rate limits and server errors are retried with exponential backoff;
// other API errors fail immediately.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	body, err := json.Marshal(openaiImageRequest{
		Prompt: prompt,
		N:      openaiImageCount,
		Size:   openaiImageSize,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < openaiMaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * openaiInitialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		url, retryable, err := c.generate(ctx, body)
		if err == nil {
			return url, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}

	return "", fmt.Errorf("image generation failed after %d attempts: %w", openaiMaxRetries, lastErr)
}

func (c *OpenAIClient) generate(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		var apiErr openaiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", retryable, fmt.Errorf("openai API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", retryable, fmt.Errorf("openai API returned status %d", resp.StatusCode)
	}

	var result openaiImageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", false, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", false, fmt.Errorf("no image returned")
	}

	return result.Data[0].URL, false, nil
}
