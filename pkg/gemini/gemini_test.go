package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/pkg/gemini"
)

type wireRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		Temperature      float64 `json:"temperature"`
		MaxOutputTokens  int     `json:"maxOutputTokens"`
		ResponseMIMEType string  `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func TestComplete(t *testing.T) {
	var got wireRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/gemini-test:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		got = wireRequest{}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch got.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"message": "backend unavailable"}}`))
		case "no_candidates":
			w.Write([]byte(`{"candidates": []}`))
		default:
			w.Write([]byte(`{
				"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"ok\":"}, {"text": "true}"}]}, "finishReason": "STOP"}],
				"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 4, "totalTokenCount": 16}
			}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	require.NoError(t, err)

	t.Run("Parts are joined", func(t *testing.T) {
		out, err := client.Complete(context.Background(), gemini.Request{
			System:      "Respond with JSON",
			Messages:    []gemini.Message{{Role: "user", Text: "plan my day"}},
			Temperature: 0.3,
			MaxTokens:   1500,
			JSON:        true,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, out.Text)
		assert.Equal(t, "STOP", out.FinishReason)
		assert.Equal(t, 16, out.Usage.TotalTokens)

		require.NotNil(t, got.SystemInstruction)
		assert.Equal(t, "Respond with JSON", got.SystemInstruction.Parts[0].Text)
		require.NotNil(t, got.GenerationConfig)
		assert.Equal(t, 1500, got.GenerationConfig.MaxOutputTokens)
		assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
	})

	t.Run("Assistant role is renamed", func(t *testing.T) {
		_, err := client.Complete(context.Background(), gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "hi"}, {Role: "assistant", Text: "hello"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "model", got.Contents[1].Role)
		assert.Nil(t, got.GenerationConfig)
	})

	t.Run("API error", func(t *testing.T) {
		_, err := client.Complete(context.Background(), gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "cause_500"}},
		})
		var apiErr *gemini.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "backend unavailable", apiErr.Message)
	})

	t.Run("No candidates", func(t *testing.T) {
		_, err := client.Complete(context.Background(), gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "no_candidates"}},
		})
		assert.ErrorIs(t, err, gemini.ErrNoCandidates)
	})
}

func TestNew(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)

	c, err := gemini.New(gemini.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, c.Model())
}
