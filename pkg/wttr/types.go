package wttr

import (
	"net/http"
	"time"
)

// Config configures the wttr.in client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Validate fills defaults.
func (c *Config) Validate() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Report is one weather lookup result.
type Report struct {
	// Summary is the one-line "city: condition temperature" text
	Summary string
	// URL is the exact URL that was fetched
	URL string
	// ScrapedAt is when the lookup completed
	ScrapedAt time.Time
}

type wttrImpl struct {
	baseURL    string
	httpClient *http.Client
}
