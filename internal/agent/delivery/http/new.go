package http

import (
	"context"

	"travel-concierge/internal/agent/orchestrator"
	"travel-concierge/pkg/log"
)

// Processor runs the decision pipeline for one message.
type Processor interface {
	ProcessQuery(ctx context.Context, message string) (orchestrator.Output, error)
}

type handler struct {
	l  log.Logger
	uc Processor
}

// New creates a new HTTP handler for the agent domain.
func New(l log.Logger, uc Processor) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
