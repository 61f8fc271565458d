package decision

import (
	"context"

	"travel-concierge/internal/model"
	"travel-concierge/pkg/llmprovider"
	"travel-concierge/pkg/log"
)

// Arbitrator merges the LLM tool suggestion with deterministic trigger
// rules and the destination safety clamp into one final ToolDecision.
type Arbitrator interface {
	Decide(ctx context.Context, in DecideInput) (model.ToolDecision, error)
}

// Decider is the default Arbitrator backed by an LLM suggestion.
type Decider struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Arbitrator = (*Decider)(nil)

// New creates a new Decider
func New(llm llmprovider.Generator, l log.Logger) *Decider {
	return &Decider{llm: llm, l: l}
}
