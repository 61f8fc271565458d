package router

import (
	"context"
	"strings"

	"travel-concierge/internal/model"
	"travel-concierge/pkg/textnorm"
)

// RuleClassifier applies the deterministic intent cascade, first match wins.
type RuleClassifier struct{}

var _ Classifier = (*RuleClassifier)(nil)

// NewRuleClassifier creates a new RuleClassifier
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify runs the cascade on the normalized message. It never fails;
// the unresolved case is reported as Ambiguous for the caller to escalate.
func (c *RuleClassifier) Classify(_ context.Context, message string) (model.Intent, error) {
	m := textnorm.Normalize(message)

	if containsAny(m, smallTalkPhrases) {
		return model.IntentSmallTalk, nil
	}

	words := strings.Fields(m)
	if len(words) <= maxAffirmationWords && !containsAny(m, travelKeywords) {
		for _, w := range words {
			for _, a := range affirmations {
				if w == a {
					return model.IntentSmallTalk, nil
				}
			}
		}
	}

	if containsAny(m, travelKeywords) {
		return model.IntentTravel, nil
	}

	if len(words) <= maxAmbiguousWords {
		return model.IntentAmbiguous, nil
	}

	return model.IntentOutOfScope, nil
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
