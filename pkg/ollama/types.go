package ollama

import (
	"net/http"
	"time"
)

// Config configures the Ollama client.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Validate fills defaults; Ollama needs no API key so there is
// nothing to reject.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Request is a chat completion request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// Response is the assistant's reply.
type Response struct {
	Text string
}

type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Wire types for the /api/chat endpoint.

type chatRequest struct {
	Model    string        `json:"model"`
	Stream   bool          `json:"stream"`
	Messages []chatMessage `json:"messages"`
	Options  *chatOptions  `json:"options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}
