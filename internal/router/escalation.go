package router

import (
	"context"
	"fmt"
	"strings"

	"travel-concierge/internal/model"
	"travel-concierge/pkg/llmprovider"
	"travel-concierge/pkg/log"
)

// EscalationClassifier asks an LLM to pick one of the four categories.
// Used only when the rule cascade could not resolve the message.
type EscalationClassifier struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Classifier = (*EscalationClassifier)(nil)

// NewEscalationClassifier creates a new EscalationClassifier
func NewEscalationClassifier(llm llmprovider.Generator, l log.Logger) *EscalationClassifier {
	return &EscalationClassifier{llm: llm, l: l}
}

// Classify sends one classification request and validates the label:
// exact match first, then substring, else Ambiguous with an error.
func (c *EscalationClassifier) Classify(ctx context.Context, message string) (model.Intent, error) {
	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		System: PromptClassifySystem,
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf("Message: %s", message)},
		},
		Temperature: EscalationTemperature,
	})
	if err != nil {
		return model.IntentAmbiguous, fmt.Errorf("%s: LLM call failed: %w", LogPrefixClassify, err)
	}

	out := strings.ToLower(strings.TrimSpace(resp.Text))

	if intent := model.Intent(out); intent.Valid() {
		return intent, nil
	}

	// the model sometimes wraps the label in a sentence
	for _, intent := range []model.Intent{
		model.IntentSmallTalk, model.IntentTravel, model.IntentOutOfScope, model.IntentAmbiguous,
	} {
		if strings.Contains(out, string(intent)) {
			return intent, nil
		}
	}

	return model.IntentAmbiguous, fmt.Errorf("%s: unrecognized label %q", LogPrefixClassify, out)
}
