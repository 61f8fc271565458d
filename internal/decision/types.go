package decision

import "travel-concierge/internal/model"

// DecideInput carries everything arbitration needs for one message.
type DecideInput struct {
	Message     string
	Entities    model.Entities
	Destination string // effective destination, empty when absent
	KBAvailable bool
}

// suggestion is the wire shape expected from the decision LLM.
type suggestion struct {
	UseTools bool              `json:"use_tools"`
	Tools    []suggestedTool   `json:"tools"`
	Reason   string            `json:"reason"`
}

type suggestedTool struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

// decideContext is the JSON context block sent to the decision LLM.
type decideContext struct {
	UserMessage          string                       `json:"user_message"`
	Destination          string                       `json:"destination,omitempty"`
	KBInfoAvailable      bool                         `json:"kb_info_available"`
	AvailableTools       []model.ToolName             `json:"available_tools"`
	ExpectedParamsByTool map[string]map[string]string `json:"expected_params_by_tool"`
	Note                 string                       `json:"note"`
}
