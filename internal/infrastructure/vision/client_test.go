package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

func TestNewClient(t *testing.T) {
	client := NewClient("test-key", "", "")

	assert.NotNil(t, client.api)
	assert.Equal(t, openai.GPT4oMini, client.model)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestNewClientCustomModel(t *testing.T) {
	client := NewClient("test-key", "https://vision.example.com/v1", "gpt-4o")
	assert.Equal(t, "gpt-4o", client.model)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-key", "", "")

	assert.False(t, client.debug)
	client.SetDebug(true)
	assert.True(t, client.debug)
	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestBackoffDuration(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tt.expected, backoffDuration(tt.attempt))
		})
	}
}

// visionServer fakes the chat completion endpoint returning the given
// message content.
func visionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		require.Len(t, req.Messages[0].MultiContent, 2)
		assert.Equal(t, openai.ChatMessagePartTypeImageURL, req.Messages[0].MultiContent[1].Type)
		assert.Equal(t, testImage, req.Messages[0].MultiContent[1].ImageURL.URL)

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Role:    openai.ChatMessageRoleAssistant,
						Content: content,
					},
					FinishReason: openai.FinishReasonStop,
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestParseMeasurements_Success(t *testing.T) {
	server := visionServer(t, `{"width": 35.5, "height": 79, "confidence": 0.9, "notes": "tape measure visible"}`)
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "gpt-4o")

	m, err := client.ParseMeasurements(context.Background(), testImage)
	require.NoError(t, err)
	assert.Equal(t, 35.5, m.Width)
	assert.Equal(t, 79.0, m.Height)
	assert.Equal(t, 0.9, m.Confidence)
	assert.Equal(t, "tape measure visible", m.Notes)
}

func TestParseMeasurements_FencedResponse(t *testing.T) {
	content := "Here are the measurements:\n```json\n{\"width\": 32, \"height\": 80, \"confidence\": 0.7}\n```"
	server := visionServer(t, content)
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "gpt-4o")

	m, err := client.ParseMeasurements(context.Background(), testImage)
	require.NoError(t, err)
	assert.Equal(t, 32.0, m.Width)
	assert.Equal(t, 80.0, m.Height)
}

func TestParseMeasurements_EmptyImage(t *testing.T) {
	client := NewClient("test-key", "", "")

	_, err := client.ParseMeasurements(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestParseMeasurements_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "internal error"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "gpt-4o")

	_, err := client.ParseMeasurements(context.Background(), testImage)
	assert.ErrorIs(t, err, domain.ErrVisionAPIFailure)
}

func TestParseResponse(t *testing.T) {
	response := func(content string) openai.ChatCompletionResponse {
		return openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
	}

	t.Run("empty choices", func(t *testing.T) {
		_, err := parseResponse(openai.ChatCompletionResponse{})
		assert.ErrorIs(t, err, domain.ErrVisionAPIFailure)
	})

	t.Run("no JSON object", func(t *testing.T) {
		_, err := parseResponse(response("I could not read the image."))
		assert.ErrorIs(t, err, domain.ErrVisionAPIFailure)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := parseResponse(response(`{"width": }`))
		assert.ErrorIs(t, err, domain.ErrVisionAPIFailure)
	})

	t.Run("both dimensions zero", func(t *testing.T) {
		_, err := parseResponse(response(`{"width": 0, "height": 0, "confidence": 0.1}`))
		assert.ErrorIs(t, err, domain.ErrVisionAPIFailure)
	})

	t.Run("one dimension is enough", func(t *testing.T) {
		m, err := parseResponse(response(`{"width": 36, "height": 0, "notes": "height not visible"}`))
		require.NoError(t, err)
		assert.Equal(t, 36.0, m.Width)
	})
}
