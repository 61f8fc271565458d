package ollama

import "time"

const (
	// DefaultBaseURL is the default local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default chat model
	DefaultModel = "qwen2.5:1.5b"

	// DefaultTimeout is the default HTTP client timeout. Local models
	// can be slow on first load, so this is intentionally generous.
	DefaultTimeout = 120 * time.Second
)
