package wttr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func newWttrImpl(cfg Config) *wttrImpl {
	return &wttrImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Current fetches the compact ?format=3 summary with French labels.
func (w *wttrImpl) Current(ctx context.Context, city string) (*Report, error) {
	if city == "" {
		return nil, fmt.Errorf("wttr: city is required")
	}

	reqURL := fmt.Sprintf("%s/%s?format=3&lang=fr", w.baseURL, url.PathEscape(city))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wttr: failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("wttr: failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wttr: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wttr: failed to read response: %w", err)
	}

	summary := strings.TrimSpace(string(body))
	if summary == "" {
		return nil, fmt.Errorf("wttr: empty response for %s", city)
	}

	return &Report{
		Summary:   summary,
		URL:       reqURL,
		ScrapedAt: time.Now().UTC(),
	}, nil
}
