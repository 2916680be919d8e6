package llmprovider

import (
	"context"

	"smart-daily-planner/pkg/gemini"
	"smart-daily-planner/pkg/openaicompat"
)

// geminiCompleter is the slice of *gemini.Client the adapter uses.
type geminiCompleter interface {
	Complete(ctx context.Context, req gemini.Request) (*gemini.Completion, error)
	Model() string
}

// chatCompleter is the slice of *openaicompat.Client the adapter uses.
type chatCompleter interface {
	Complete(ctx context.Context, req openaicompat.Request) (*openaicompat.Completion, error)
	Model() string
	Vendor() string
}

// GeminiProvider serves requests through the Gemini generateContent API.
type GeminiProvider struct {
	client geminiCompleter
}

func NewGeminiProvider(client geminiCompleter) *GeminiProvider {
	return &GeminiProvider{client: client}
}

func (p *GeminiProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	out, err := p.client.Complete(ctx, gemini.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSON:        req.JSON,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         out.Text,
		ProviderName: p.Name(),
		ModelName:    out.Model,
		Usage: &Usage{
			InputTokens:  out.Usage.InputTokens,
			OutputTokens: out.Usage.OutputTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}, nil
}

func (p *GeminiProvider) Name() string  { return "gemini" }
func (p *GeminiProvider) Model() string { return p.client.Model() }

// ChatProvider serves requests through an OpenAI-compatible chat endpoint
// (qwen, groq, deepseek) and reports the vendor as its name.
type ChatProvider struct {
	client chatCompleter
}

func NewChatProvider(client chatCompleter) *ChatProvider {
	return &ChatProvider{client: client}
}

func (p *ChatProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openaicompat.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openaicompat.Message{Role: m.Role, Content: m.Text}
	}

	out, err := p.client.Complete(ctx, openaicompat.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSON:        req.JSON,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:         out.Text,
		ProviderName: p.Name(),
		ModelName:    out.Model,
		Usage: &Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CompletionTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}, nil
}

func (p *ChatProvider) Name() string  { return p.client.Vendor() }
func (p *ChatProvider) Model() string { return p.client.Model() }
