package router

import (
	"context"

	"travel-concierge/internal/model"
	"travel-concierge/pkg/llmprovider"
	"travel-concierge/pkg/log"
)

// Classifier resolves a message to one intent category.
// Implementations may return model.IntentAmbiguous; the composed
// Router never does.
type Classifier interface {
	Classify(ctx context.Context, message string) (model.Intent, error)
}

// Router stages the rule classifier in front of the LLM escalation:
// rules first, escalate only on Ambiguous, escalate at most once.
type Router struct {
	rules      Classifier
	escalation Classifier
	l          log.Logger
}

var _ Classifier = (*Router)(nil)

// New creates a Router with the default rule and escalation stages
func New(llm llmprovider.Generator, l log.Logger) *Router {
	return &Router{
		rules:      NewRuleClassifier(),
		escalation: NewEscalationClassifier(llm, l),
		l:          l,
	}
}

// Classify resolves the message intent. The result is never Ambiguous:
// the unresolved case is escalated once, and an escalation failure or
// unrecognized label falls back to OutOfScope.
func (r *Router) Classify(ctx context.Context, message string) (model.Intent, error) {
	intent, err := r.rules.Classify(ctx, message)
	if err != nil {
		return model.IntentOutOfScope, err
	}
	if intent != model.IntentAmbiguous {
		r.l.Infof(ctx, "%s: rules resolved %s", LogPrefixClassify, intent)
		return intent, nil
	}

	intent, err = r.escalation.Classify(ctx, message)
	if err != nil {
		r.l.Warnf(ctx, "%s: escalation failed, defaulting to %s: %v",
			LogPrefixClassify, model.IntentOutOfScope, err)
		return model.IntentOutOfScope, nil
	}
	if intent == model.IntentAmbiguous {
		// never leave the pipeline unresolved
		return model.IntentOutOfScope, nil
	}

	r.l.Infof(ctx, "%s: escalation resolved %s", LogPrefixClassify, intent)
	return intent, nil
}
