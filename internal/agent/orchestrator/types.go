package orchestrator

import (
	"travel-concierge/internal/kb"
	"travel-concierge/internal/model"
)

// Output is the result of one processed query: the user-facing answer
// plus the audit trace.
type Output struct {
	Answer string
	Trace  model.DecisionTrace
}

// factBundle is the admissible context handed to the prose generator.
type factBundle struct {
	UserMessage string              `json:"user_message"`
	Destination string              `json:"destination,omitempty"`
	KBInfo      *kb.DestinationInfo `json:"kb_info,omitempty"`
	ToolResults map[string]any      `json:"tool_results,omitempty"`
}
