// Package vision wraps an OpenAI-compatible vision model that extracts
// structured door measurements from an uploaded image.
package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
)

const (
	maxRetries     = 3
	requestTimeout = 30 * time.Second
)

// measurementPrompt asks the model for a strict JSON object so the response
// can be parsed without a schema round-trip.
const measurementPrompt = `You are a door measurement assistant. The image shows a door or door ` +
	`opening, possibly with a tape measure or measurement annotations. ` +
	`Extract the door's width and height in inches. Respond with ONLY a JSON ` +
	`object of the form {"width": <number>, "height": <number>, ` +
	`"confidence": <0-1>, "notes": "<short caveats>"} and nothing else. ` +
	`If a dimension cannot be determined, use 0 for it and explain in notes.`

// Client calls a vision-capable chat completion API to parse measurements.
// A client-side rate limiter keeps request bursts within the provider's
// limits; transient failures are retried with exponential backoff.
type Client struct {
	api         *openai.Client
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a vision client. baseURL may be empty for the default
// OpenAI endpoint; model may be empty for the default vision model.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		// 2 req/s sustained with a small burst allowance
		rateLimiter: rate.NewLimiter(rate.Limit(2), 5),
	}
}

// SetDebug enables request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ParseMeasurements sends the image to the vision model and returns the
// extracted dimensions. imageDataURL is a data URL or https URL of the
// uploaded photo.
func (c *Client) ParseMeasurements(ctx context.Context, imageDataURL string) (*domain.Measurements, error) {
	if imageDataURL == "" {
		return nil, domain.ErrInvalidRequest
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 300,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: measurementPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    imageDataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err := c.api.CreateChatCompletion(reqCtx, req)
		cancel()
		if err == nil {
			return parseResponse(resp)
		}
		lastErr = err

		if c.debug {
			log.Printf("[VISION] attempt %d/%d failed: %v", attempt, maxRetries, err)
		}
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoffDuration(attempt)):
			}
		}
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, lastErr)
}

// backoffDuration returns the wait before retrying the given attempt:
// 500ms, 1s, 2s, ...
func backoffDuration(attempt int) time.Duration {
	return 500 * time.Millisecond * (1 << (attempt - 1))
}

// parseResponse extracts the JSON object from the model's reply. Models
// occasionally wrap the object in prose or code fences, so the parser takes
// the outermost braces rather than unmarshalling the raw content.
func parseResponse(resp openai.ChatCompletionResponse) (*domain.Measurements, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrVisionAPIFailure)
	}
	content := resp.Choices[0].Message.Content

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in response", domain.ErrVisionAPIFailure)
	}

	var m domain.Measurements
	if err := json.Unmarshal([]byte(content[start:end+1]), &m); err != nil {
		return nil, fmt.Errorf("%w: malformed measurement JSON: %v", domain.ErrVisionAPIFailure, err)
	}
	if m.Width <= 0 && m.Height <= 0 {
		return nil, fmt.Errorf("%w: no measurements detected", domain.ErrVisionAPIFailure)
	}
	return &m, nil
}
