package decision

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"travel-concierge/internal/model"
	"travel-concierge/pkg/llmprovider"
	"travel-concierge/pkg/textnorm"
)

// mergeRule transforms a decision into a new decision. Rules run in a
// fixed order and never mutate their input.
type mergeRule func(model.ToolDecision, DecideInput) model.ToolDecision

// Decide implements the arbitration pipeline: LLM suggestion →
// sanitize → deterministic trigger forcing → destination clamp.
// An unparseable suggestion is fatal for the request; no safe tool
// set can be derived from it.
func (d *Decider) Decide(ctx context.Context, in DecideInput) (model.ToolDecision, error) {
	suggested, err := d.suggest(ctx, in)
	if err != nil {
		return model.ToolDecision{}, err
	}

	decision := sanitize(*suggested, in)
	for _, rule := range []mergeRule{forceByTriggers, clampNoDestination} {
		decision = rule(decision, in)
	}

	d.l.Infof(ctx, "%s: use_tools=%t tools=%d reason=%q",
		LogPrefixDecide, decision.UseTools, len(decision.Tools), decision.Reason)
	return decision, nil
}

// suggest asks the LLM which tools to use. The response must be a
// strict JSON object; markdown fences are tolerated, anything else
// fails the call.
func (d *Decider) suggest(ctx context.Context, in DecideInput) (*suggestion, error) {
	contextJSON, err := json.MarshalIndent(decideContext{
		UserMessage:     in.Message,
		Destination:     in.Destination,
		KBInfoAvailable: in.KBAvailable,
		AvailableTools:  model.AllowedTools,
		ExpectedParamsByTool: map[string]map[string]string{
			"weather": {"city": "string"},
			"flights": {"from": "string|null", "to": "string", "month": "string|null"},
			"hotels":  {"city": "string", "month": "string|null"},
		},
		Note: "La destination est en minuscule (ex: lisbonne). " +
			"Le backend normalise pour le tool (ex: Lisbon). " +
			"Ne change pas la destination, réutilise-la.",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal context: %w", LogPrefixDecide, err)
	}

	resp, err := d.llm.GenerateContent(ctx, &llmprovider.Request{
		System: PromptDecideSystem,
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(
				"Contexte (JSON):\n%s\n\nDécide maintenant et retourne uniquement le JSON.",
				contextJSON)},
		},
		Temperature: DecideTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: LLM call failed: %w", LogPrefixDecide, err)
	}

	var s suggestion
	if err := unmarshalJSONObject(resp.Text, &s); err != nil {
		return nil, fmt.Errorf("%s: unparseable suggestion: %w", LogPrefixDecide, err)
	}
	return &s, nil
}

var (
	fenceOpenPattern  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceClosePattern = regexp.MustCompile("\\s*```$")
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// unmarshalJSONObject parses a JSON object out of LLM output, stripping
// markdown fences and surrounding chatter.
func unmarshalJSONObject(text string, v any) error {
	text = strings.TrimSpace(text)
	text = fenceOpenPattern.ReplaceAllString(text, "")
	text = fenceClosePattern.ReplaceAllString(text, "")

	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}

	obj := jsonObjectPattern.FindString(text)
	if obj == "" {
		return fmt.Errorf("no JSON object found in %q", truncate(text, 200))
	}
	return json.Unmarshal([]byte(obj), v)
}

// sanitize keeps only allow-listed tool names and re-derives every
// parameter from extracted entities. The LLM selects which tools,
// never what values to call them with.
func sanitize(s suggestion, in DecideInput) model.ToolDecision {
	reason := s.Reason
	if reason == "" {
		reason = "No reason provided"
	}
	decision := model.ToolDecision{UseTools: s.UseTools, Reason: reason}

	if !s.UseTools {
		return decision
	}

	for _, t := range s.Tools {
		name := model.ToolName(strings.ToLower(strings.TrimSpace(t.Name)))
		if !name.Allowed() {
			continue
		}
		decision = decision.WithTool(model.ToolRequest{
			Name:   name,
			Params: deriveParams(name, in),
		})
	}
	return decision
}

// forceByTriggers adds a tool whenever its keyword set matches the
// normalized message and a destination is present, regardless of the
// LLM suggestion. Override notes are appended, never overwritten.
func forceByTriggers(d model.ToolDecision, in DecideInput) model.ToolDecision {
	if in.Destination == "" {
		return d
	}

	norm := textnorm.Normalize(in.Message)
	forced := []struct {
		name     model.ToolName
		triggers []string
		note     string
	}{
		{model.ToolWeather, weatherTriggers, ReasonOverrideWeather},
		{model.ToolFlights, flightTriggers, ReasonOverrideFlights},
		{model.ToolHotels, hotelTriggers, ReasonOverrideHotels},
	}

	for _, f := range forced {
		if !containsAny(norm, f.triggers) {
			continue
		}
		d = d.WithTool(model.ToolRequest{Name: f.name, Params: deriveParams(f.name, in)})
		d.UseTools = true
		d.Reason = d.Reason + "; " + f.note
	}
	return d
}

// clampNoDestination is the unconditional safety rule: without a
// destination no tool is ever invoked, whatever prior steps decided.
func clampNoDestination(d model.ToolDecision, in DecideInput) model.ToolDecision {
	if in.Destination != "" {
		return d
	}
	return model.ToolDecision{UseTools: false, Tools: nil, Reason: ReasonNoDestination}
}

// deriveParams rebuilds tool parameters from extracted entities only.
func deriveParams(name model.ToolName, in DecideInput) map[string]string {
	switch name {
	case model.ToolWeather:
		return map[string]string{"city": in.Destination}
	case model.ToolHotels:
		return map[string]string{"city": in.Destination, "month": in.Entities.TimeSpec}
	case model.ToolFlights:
		return map[string]string{
			"from":  in.Entities.Origin,
			"to":    in.Destination,
			"month": in.Entities.TimeSpec,
		}
	}
	return nil
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
