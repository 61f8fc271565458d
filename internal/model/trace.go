package model

// Entities holds what the extractor pulled from one message.
// Empty string means absent.
type Entities struct {
	Destination string // vocabulary match
	Origin      string // route origin, any token shape
	RouteDest   string // route destination, any token shape
	TimeSpec    string // "YYYY-MM" or "YYYY-MM-DD/YYYY-MM-DD"
}

// EffectiveDestination prefers the route destination over the vocabulary match.
func (e Entities) EffectiveDestination() string {
	if e.RouteDest != "" {
		return e.RouteDest
	}
	return e.Destination
}

// ClarificationPrompt is a terminal response asking for a missing parameter.
type ClarificationPrompt struct {
	Tool         ToolName `json:"tool"`
	MissingField string   `json:"missing_field"`
	Question     string   `json:"question"`
}

// DecisionTrace is the audit record accompanying every answer.
type DecisionTrace struct {
	RequestID    string       `json:"request_id"`
	Intent       Intent       `json:"intent"`
	Destination  string       `json:"destination,omitempty"`
	KBUsed       bool         `json:"kb_used"`
	ToolsCalled  []string     `json:"tools_called"`
	ToolDecision ToolDecision `json:"tool_decision"`
}
