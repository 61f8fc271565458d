package decision

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travel-concierge/internal/model"
	"travel-concierge/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockGenerator struct {
	text string
	err  error
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

func newDecider(text string) *Decider {
	return New(&mockGenerator{text: text}, &mockLogger{})
}

func TestDecideSuggestionAccepted(t *testing.T) {
	d := newDecider(`{
		"use_tools": true,
		"tools": [{"name": "weather", "params": {"city": "INVENTED"}}],
		"reason": "météo actuelle demandée"
	}`)

	got, err := d.Decide(context.Background(), DecideInput{
		Message:     "quel temps fait-il à bangkok",
		Entities:    model.Entities{Destination: "bangkok"},
		Destination: "bangkok",
		KBAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.UseTools || len(got.Tools) != 1 || got.Tools[0].Name != model.ToolWeather {
		t.Fatalf("unexpected decision %+v", got)
	}
	// params are always re-derived, never trusted from the LLM
	if got.Tools[0].Params["city"] != "bangkok" {
		t.Errorf("expected re-derived city, got %q", got.Tools[0].Params["city"])
	}
}

func TestDecideMarkdownFences(t *testing.T) {
	d := newDecider("```json\n{\"use_tools\": false, \"tools\": [], \"reason\": \"KB suffit\"}\n```")

	got, err := d.Decide(context.Background(), DecideInput{
		Message:     "je veux partir à lisbonne en mai",
		Entities:    model.Entities{Destination: "lisbonne", TimeSpec: "2026-05"},
		Destination: "lisbonne",
		KBAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UseTools || len(got.Tools) != 0 {
		t.Errorf("expected no-tool decision, got %+v", got)
	}
	if got.Reason != "KB suffit" {
		t.Errorf("unexpected reason %q", got.Reason)
	}
}

func TestDecideUnparseableIsFatal(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
	}{
		{"prose output", &mockGenerator{text: "je pense qu'il faut appeler la météo"}},
		{"transport failure", &mockGenerator{err: errors.New("connection refused")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.gen, &mockLogger{})
			_, err := d.Decide(context.Background(), DecideInput{
				Message:     "météo à bangkok",
				Destination: "bangkok",
			})
			if err == nil {
				t.Fatal("expected fatal error")
			}
		})
	}
}

func TestDecideDropsUnknownTools(t *testing.T) {
	d := newDecider(`{
		"use_tools": true,
		"tools": [
			{"name": "calendar", "params": {}},
			{"name": "hotels", "params": {}}
		],
		"reason": "hébergement demandé"
	}`)

	got, err := d.Decide(context.Background(), DecideInput{
		Message:     "un hôtel à rome en mai",
		Entities:    model.Entities{Destination: "rome", TimeSpec: "2026-05"},
		Destination: "rome",
		KBAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tool := range got.Tools {
		if tool.Name == "calendar" {
			t.Fatal("unknown tool must be dropped silently")
		}
	}
	if len(got.Tools) != 1 || got.Tools[0].Name != model.ToolHotels {
		t.Fatalf("unexpected tools %+v", got.Tools)
	}
	if got.Tools[0].Params["month"] != "2026-05" {
		t.Errorf("expected re-derived month, got %q", got.Tools[0].Params["month"])
	}
}

func TestDecideTriggerForcesFlights(t *testing.T) {
	// the LLM says no tools, the flights trigger keyword wins
	d := newDecider(`{"use_tools": false, "tools": [], "reason": "KB suffit"}`)

	got, err := d.Decide(context.Background(), DecideInput{
		Message:     "vols de paris à bangkok en mai",
		Entities:    model.Entities{Destination: "bangkok", Origin: "paris", RouteDest: "bangkok", TimeSpec: "2026-05"},
		Destination: "bangkok",
		KBAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.UseTools {
		t.Fatal("trigger match must force use_tools=true")
	}
	var flights *model.ToolRequest
	for i := range got.Tools {
		if got.Tools[i].Name == model.ToolFlights {
			flights = &got.Tools[i]
		}
	}
	if flights == nil {
		t.Fatal("expected flights in final tool set")
	}
	if flights.Params["from"] != "paris" || flights.Params["to"] != "bangkok" || flights.Params["month"] != "2026-05" {
		t.Errorf("unexpected flight params %+v", flights.Params)
	}
	// the override note is appended to the existing reason, not a replacement
	if !strings.Contains(got.Reason, "KB suffit") || !strings.Contains(got.Reason, ReasonOverrideFlights) {
		t.Errorf("unexpected reason %q", got.Reason)
	}
}

func TestDecideDeduplicatesByName(t *testing.T) {
	// suggestion and trigger both request weather; they collapse to one entry
	d := newDecider(`{
		"use_tools": true,
		"tools": [{"name": "weather", "params": {}}],
		"reason": "météo demandée"
	}`)

	got, err := d.Decide(context.Background(), DecideInput{
		Message:     "météo à bangkok maintenant",
		Entities:    model.Entities{Destination: "bangkok"},
		Destination: "bangkok",
		KBAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for _, tool := range got.Tools {
		if tool.Name == model.ToolWeather {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected weather once, got %d entries", count)
	}
}

func TestDecideClampWithoutDestination(t *testing.T) {
	// the LLM claims tools are needed; the clamp overrides everything
	d := newDecider(`{
		"use_tools": true,
		"tools": [{"name": "weather", "params": {"city": "tokyo"}}],
		"reason": "météo demandée"
	}`)

	got, err := d.Decide(context.Background(), DecideInput{
		Message:     "météo à tokyo",
		Entities:    model.Entities{},
		Destination: "",
		KBAvailable: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.UseTools || len(got.Tools) != 0 {
		t.Fatalf("expected clamped decision, got %+v", got)
	}
	if got.Reason != ReasonNoDestination {
		t.Errorf("unexpected reason %q", got.Reason)
	}
}
