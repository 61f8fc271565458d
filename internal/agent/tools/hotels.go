package tools

import (
	"context"
	"fmt"
	"time"

	"travel-concierge/internal/agent"
	"travel-concierge/internal/kb"
	"travel-concierge/internal/model"
	"travel-concierge/pkg/kayak"
	"travel-concierge/pkg/timespec"
)

// One sample night in the middle of the requested month.
const (
	hotelCheckinDay  = 15
	hotelCheckoutDay = 16
)

// HotelsTool scrapes Kayak stays and summarizes the lowest prices.
type HotelsTool struct {
	client kayak.IKayak
}

// NewHotelsTool creates a new hotels tool.
func NewHotelsTool(client kayak.IKayak) agent.Tool {
	return &HotelsTool{client: client}
}

func (t *HotelsTool) Name() model.ToolName {
	return model.ToolHotels
}

func (t *HotelsTool) Execute(ctx context.Context, params map[string]string) (map[string]any, error) {
	city, month := params["city"], params["month"]
	if city == "" {
		return nil, fmt.Errorf("city parameter is required")
	}

	loc, ok := kb.StayLocationFor(city)
	if !ok {
		return nil, fmt.Errorf("no stay location known for %q", city)
	}

	checkin, checkout, err := timespec.ExpandMonth(month, hotelCheckinDay, hotelCheckoutDay)
	if err != nil {
		return nil, err
	}

	quote, err := t.client.SearchHotels(ctx, loc.Slug, loc.PlaceID, checkin, checkout)
	if err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}

	var minPrice, avgPrice any = kayak.PriceNotFound, kayak.PriceNotFound
	if quote.SampleSize > 0 {
		minPrice, avgPrice = quote.MinPriceEUR, quote.AvgPriceEUR
	}

	return map[string]any{
		"status":        "ok",
		"city":          city,
		"month_input":   month,
		"checkin":       quote.Checkin,
		"checkout":      quote.Checkout,
		"min_price_eur": minPrice,
		"avg_price_eur": avgPrice,
		"sample_size":   quote.SampleSize,
		"url":           quote.URL,
		"source":        "Kayak",
		"scraped_at":    quote.ScrapedAt.Format(time.RFC3339),
	}, nil
}
