package orchestrator

import (
	"time"

	"travel-concierge/internal/agent"
	"travel-concierge/internal/decision"
	"travel-concierge/internal/parser"
	"travel-concierge/internal/router"
	"travel-concierge/pkg/llmprovider"
	pkgLog "travel-concierge/pkg/log"
)

// Orchestrator runs the full decision pipeline for one message:
// intent → entities → arbitration → clarification gate → tools →
// prose generation, with a decision trace on every path.
type Orchestrator struct {
	classifier router.Classifier
	extractor  *parser.Extractor
	arbitrator decision.Arbitrator
	registry   *agent.ToolRegistry
	llm        llmprovider.Generator
	l          pkgLog.Logger
	now        func() time.Time
}

// New creates a new Orchestrator
func New(
	classifier router.Classifier,
	extractor *parser.Extractor,
	arbitrator decision.Arbitrator,
	registry *agent.ToolRegistry,
	llm llmprovider.Generator,
	l pkgLog.Logger,
) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		extractor:  extractor,
		arbitrator: arbitrator,
		registry:   registry,
		llm:        llm,
		l:          l,
		now:        time.Now,
	}
}
