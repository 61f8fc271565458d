// Package tools implements the agent's external data-acquisition
// capabilities over the scraping clients.
package tools

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/internal/agent"
	"travel-concierge/internal/kb"
	"travel-concierge/internal/model"
	"travel-concierge/pkg/wttr"
)

// WeatherTool fetches the current one-line weather summary for a city.
type WeatherTool struct {
	client wttr.IWttr
}

// NewWeatherTool creates a new weather tool.
func NewWeatherTool(client wttr.IWttr) agent.Tool {
	return &WeatherTool{client: client}
}

func (t *WeatherTool) Name() model.ToolName {
	return model.ToolWeather
}

func (t *WeatherTool) Execute(ctx context.Context, params map[string]string) (map[string]any, error) {
	city := params["city"]
	if city == "" {
		return nil, fmt.Errorf("city parameter is required")
	}

	report, err := t.client.Current(ctx, kb.DisplayName(city))
	if err != nil {
		return nil, fmt.Errorf("weather lookup failed: %w", err)
	}

	return map[string]any{
		"status":     "ok",
		"city":       city,
		"raw":        report.Summary,
		"url":        report.URL,
		"source":     "wttr.in",
		"scraped_at": report.ScrapedAt.Format(time.RFC3339),
	}, nil
}
