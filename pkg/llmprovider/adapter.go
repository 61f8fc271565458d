package llmprovider

import (
	"context"

	"travel-concierge/pkg/gemini"
	"travel-concierge/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ollamaReq := &ollama.Request{
		System:      req.System,
		Messages:    convertToOllamaMessages(req.Messages),
		Temperature: req.Temperature,
	}

	resp, err := a.client.GenerateContent(ctx, ollamaReq)
	if err != nil {
		return nil, &ProviderError{Provider: "ollama", Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "ollama",
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

func convertToOllamaMessages(msgs []Message) []ollama.Message {
	messages := make([]ollama.Message, len(msgs))
	for i, msg := range msgs {
		messages[i] = ollama.Message{Role: msg.Role, Text: msg.Text}
	}
	return messages
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		System:      req.System,
		Messages:    convertToGeminiMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiMessages(msgs []Message) []gemini.Message {
	messages := make([]gemini.Message, len(msgs))
	for i, msg := range msgs {
		messages[i] = gemini.Message{Role: msg.Role, Text: msg.Text}
	}
	return messages
}
