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

// Round trips default to a week in the middle of the requested month.
const (
	flightDepartDay = 15
	flightReturnDay = 22
)

// FlightsTool scrapes Kayak for the cheapest round-trip price.
type FlightsTool struct {
	client kayak.IKayak
}

// NewFlightsTool creates a new flights tool.
func NewFlightsTool(client kayak.IKayak) agent.Tool {
	return &FlightsTool{client: client}
}

func (t *FlightsTool) Name() model.ToolName {
	return model.ToolFlights
}

func (t *FlightsTool) Execute(ctx context.Context, params map[string]string) (map[string]any, error) {
	originCity, destCity, month := params["from"], params["to"], params["month"]
	if originCity == "" || destCity == "" {
		return nil, fmt.Errorf("from and to parameters are required")
	}

	origin := kb.AirportCode(originCity)
	if origin == "" {
		return nil, fmt.Errorf("no airport known for %q", originCity)
	}
	destination := kb.AirportCode(destCity)
	if destination == "" {
		return nil, fmt.Errorf("no airport known for %q", destCity)
	}

	departDate, returnDate, err := timespec.ExpandMonth(month, flightDepartDay, flightReturnDay)
	if err != nil {
		return nil, err
	}

	quote, err := t.client.SearchFlights(ctx, origin, destination, departDate, returnDate)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	return map[string]any{
		"status":         "ok",
		"origin":         origin,
		"destination":    destination,
		"depart_date":    quote.DepartDate,
		"return_date":    quote.ReturnDate,
		"month_input":    month,
		"cheapest_price": quote.CheapestPrice,
		"url":            quote.URL,
		"source":         "Kayak",
		"scraped_at":     quote.ScrapedAt.Format(time.RFC3339),
	}, nil
}
