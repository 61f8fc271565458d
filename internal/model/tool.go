package model

// ToolName identifies one external data-acquisition capability.
type ToolName string

const (
	ToolWeather ToolName = "weather"
	ToolFlights ToolName = "flights"
	ToolHotels  ToolName = "hotels"
)

// AllowedTools is the fixed allow-list, in invocation priority order.
var AllowedTools = []ToolName{ToolWeather, ToolFlights, ToolHotels}

// Allowed reports whether the name is in the allow-list.
func (t ToolName) Allowed() bool {
	for _, name := range AllowedTools {
		if t == name {
			return true
		}
	}
	return false
}

// ToolRequest is one planned tool invocation. Params are always
// re-derived from extracted entities, never taken from an LLM.
type ToolRequest struct {
	Name   ToolName          `json:"name"`
	Params map[string]string `json:"params"`
}

// ToolDecision is the final arbitration outcome.
// Tools is unique by name and ordered by first appearance.
type ToolDecision struct {
	UseTools bool          `json:"use_tools"`
	Tools    []ToolRequest `json:"tools"`
	Reason   string        `json:"reason"`
}

// WithTool returns a copy with the request appended, skipping duplicates by name.
func (d ToolDecision) WithTool(req ToolRequest) ToolDecision {
	for _, t := range d.Tools {
		if t.Name == req.Name {
			return d
		}
	}
	tools := make([]ToolRequest, len(d.Tools), len(d.Tools)+1)
	copy(tools, d.Tools)
	d.Tools = append(tools, req)
	return d
}

// ToolResult is one tool invocation outcome keyed into the result map.
// Payload holds tool-specific fields plus source, url, scraped_at metadata.
type ToolResult struct {
	Status  string         `json:"status"` // "ok" or "error"
	Payload map[string]any `json:"payload,omitempty"`
	Error   string         `json:"error,omitempty"`
}
