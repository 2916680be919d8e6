package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to one OpenAI-compatible chat completions endpoint.
// It is safe for concurrent use.
type Client struct {
	vendor     string
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New resolves the vendor preset and fills unset fields from it.
func New(cfg Config) (*Client, error) {
	vendor := strings.ToLower(strings.TrimSpace(cfg.Vendor))
	if alias, ok := aliases[vendor]; ok {
		vendor = alias
	}
	p, ok := presets[vendor]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVendor, cfg.Vendor)
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		vendor:     vendor,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
	if c.model == "" {
		c.model = p.model
	}
	if c.baseURL == "" {
		c.baseURL = p.baseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return c, nil
}

func (c *Client) Vendor() string { return c.vendor }
func (c *Client) Model() string  { return c.model }

// Complete sends req and returns the first choice.
func (c *Client) Complete(ctx context.Context, req Request) (*Completion, error) {
	body, err := json.Marshal(c.wire(req))
	if err != nil {
		return nil, fmt.Errorf("openaicompat: marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openaicompat: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: %s: %w", c.vendor, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Vendor: c.vendor, StatusCode: resp.StatusCode, Message: string(raw)}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error.Message != "" {
			apiErr.Message = eb.Error.Message
		}
		return nil, apiErr
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("openaicompat: decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrNoChoices
	}

	model := out.Model
	if model == "" {
		model = c.model
	}
	return &Completion{
		Text:         out.Choices[0].Message.Content,
		Model:        model,
		FinishReason: out.Choices[0].FinishReason,
		Usage: Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
	}, nil
}

func (c *Client) wire(req Request) chatRequest {
	msgs := make([]chatMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, chatMessage{Role: roleSystem, Content: req.System})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, chatMessage{Role: m.Role, Content: m.Content})
	}

	out := chatRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSON {
		out.ResponseFormat = &responseFormat{Type: responseFormatJSON}
	}
	return out
}
