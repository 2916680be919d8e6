package openaicompat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/pkg/openaicompat"
)

type wireRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens      int `json:"max_tokens"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       openaicompat.Config
		wantModel string
		wantErr   error
	}{
		{name: "Qwen preset", cfg: openaicompat.Config{Vendor: "qwen", APIKey: "k"}, wantModel: "qwen-plus"},
		{name: "Alias", cfg: openaicompat.Config{Vendor: "Alibaba", APIKey: "k"}, wantModel: "qwen-plus"},
		{name: "DeepSeek preset", cfg: openaicompat.Config{Vendor: "deepseek", APIKey: "k"}, wantModel: "deepseek-chat"},
		{name: "Model override", cfg: openaicompat.Config{Vendor: "groq", APIKey: "k", Model: "m"}, wantModel: "m"},
		{name: "Missing key", cfg: openaicompat.Config{Vendor: "groq"}, wantErr: openaicompat.ErrMissingAPIKey},
		{name: "Unknown vendor", cfg: openaicompat.Config{Vendor: "acme", APIKey: "k"}, wantErr: openaicompat.ErrUnknownVendor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := openaicompat.New(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, c.Model())
		})
	}
}

func TestComplete(t *testing.T) {
	var got wireRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		got = wireRequest{}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch got.Messages[len(got.Messages)-1].Content {
		case "rate_limit":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "slow down"}}`))
		case "no_choices":
			w.Write([]byte(`{"choices": []}`))
		default:
			w.Write([]byte(`{
				"choices": [{"message": {"role": "assistant", "content": "{\"timeBlocks\":[]}"}, "finish_reason": "stop"}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		}
	}))
	defer ts.Close()

	client, err := openaicompat.New(openaicompat.Config{Vendor: "deepseek", APIKey: "test-key", BaseURL: ts.URL + "/"})
	require.NoError(t, err)

	t.Run("System prompt and JSON mode", func(t *testing.T) {
		out, err := client.Complete(context.Background(), openaicompat.Request{
			System:    "plan",
			Messages:  []openaicompat.Message{{Role: "user", Content: "hi"}},
			MaxTokens: 100,
			JSON:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"timeBlocks":[]}`, out.Text)
		assert.Equal(t, "deepseek-chat", out.Model)
		assert.Equal(t, 15, out.Usage.TotalTokens)

		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, 100, got.MaxTokens)
		require.NotNil(t, got.ResponseFormat)
		assert.Equal(t, "json_object", got.ResponseFormat.Type)
	})

	t.Run("API error", func(t *testing.T) {
		_, err := client.Complete(context.Background(), openaicompat.Request{
			Messages: []openaicompat.Message{{Role: "user", Content: "rate_limit"}},
		})
		var apiErr *openaicompat.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Equal(t, "slow down", apiErr.Message)
		assert.True(t, apiErr.Retryable())
	})

	t.Run("No choices", func(t *testing.T) {
		_, err := client.Complete(context.Background(), openaicompat.Request{
			Messages: []openaicompat.Message{{Role: "user", Content: "no_choices"}},
		})
		assert.ErrorIs(t, err, openaicompat.ErrNoChoices)
	})
}
