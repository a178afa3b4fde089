package llmprovider

import (
	"context"

	"propfirm-assistant/pkg/deepseek"
	"propfirm-assistant/pkg/gemini"
	"propfirm-assistant/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemPrompt,
		UserPrompt:        req.UserPrompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter adapts pkg/deepseek to the Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		SystemInstruction: req.SystemPrompt,
		UserPrompt:        req.UserPrompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "deepseek", Err: err}
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string { return "deepseek" }

// Model returns model name
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

// QwenAdapter adapts pkg/qwen to the Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: req.SystemPrompt,
		UserPrompt:        req.UserPrompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "qwen", Err: err}
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: "qwen",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string { return "qwen" }

// Model returns model name
func (a *QwenAdapter) Model() string { return a.client.Model() }
