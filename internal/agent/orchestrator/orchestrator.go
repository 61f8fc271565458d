package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"travel-concierge/internal/clarify"
	"travel-concierge/internal/decision"
	"travel-concierge/internal/kb"
	"travel-concierge/internal/model"
	"travel-concierge/pkg/llmprovider"
)

// ProcessQuery runs the decision pipeline for one message. Small-talk
// and out-of-scope messages terminate with fixed answers; travel
// requests go through extraction, arbitration, the clarification gate,
// sequential tool invocation, and prose generation.
func (o *Orchestrator) ProcessQuery(ctx context.Context, message string) (Output, error) {
	requestID := uuid.NewString()
	toolsCalled := []string{}

	intent, err := o.classifier.Classify(ctx, message)
	if err != nil {
		return Output{}, fmt.Errorf("%s: classification failed: %w", LogPrefixProcessQuery, err)
	}
	o.l.Infof(ctx, "%s: request=%s intent=%s", LogPrefixProcessQuery, requestID, intent)

	switch intent {
	case model.IntentSmallTalk:
		return terminal(requestID, intent, AnswerSmallTalk, ReasonSmallTalk), nil
	case model.IntentOutOfScope:
		return terminal(requestID, intent, AnswerOutOfScope, ReasonOutOfScope), nil
	}

	entities := o.extractor.Extract(message, o.now())
	dest := entities.EffectiveDestination()
	kbInfo, kbAvailable := kb.DestinationInfoFor(dest)

	toolDecision, err := o.arbitrator.Decide(ctx, decision.DecideInput{
		Message:     message,
		Entities:    entities,
		Destination: dest,
		KBAvailable: kbAvailable,
	})
	if err != nil {
		return Output{}, fmt.Errorf("%s: arbitration failed: %w", LogPrefixProcessQuery, err)
	}

	trace := model.DecisionTrace{
		RequestID:    requestID,
		Intent:       intent,
		Destination:  dest,
		KBUsed:       kbAvailable,
		ToolsCalled:  toolsCalled,
		ToolDecision: toolDecision,
	}

	// invoke sequentially in decision order, gating each tool on its
	// minimum-parameter contract before it runs
	results := make(map[string]any)
	if toolDecision.UseTools {
		for _, req := range toolDecision.Tools {
			if p := clarify.CheckTool(req.Name, entities); p != nil {
				trace.ToolsCalled = toolsCalled
				trace.ToolDecision = model.ToolDecision{
					UseTools: false,
					Tools:    nil,
					Reason:   fmt.Sprintf("missing parameter for %s: %s", p.Tool, p.Question),
				}
				o.l.Infof(ctx, "%s: request=%s clarification for %s (%s)",
					LogPrefixProcessQuery, requestID, p.Tool, p.MissingField)
				return Output{Answer: p.Question, Trace: trace}, nil
			}

			name := string(req.Name)
			tool, ok := o.registry.Get(req.Name)
			if !ok {
				o.l.Errorf(ctx, "%s: tool %s not registered", LogPrefixProcessQuery, name)
				results[name+"_error"] = map[string]any{"status": "error", "error": "tool not available"}
				continue
			}

			payload, err := tool.Execute(ctx, req.Params)
			if err != nil {
				o.l.Warnf(ctx, "%s: tool %s failed: %v", LogPrefixProcessQuery, name, err)
				results[name+"_error"] = map[string]any{"status": "error", "error": err.Error()}
				toolsCalled = append(toolsCalled, name)
				continue
			}
			results[name] = payload
			toolsCalled = append(toolsCalled, name)
		}
	}
	trace.ToolsCalled = toolsCalled

	answer, err := o.generateAnswer(ctx, message, dest, kbInfo, kbAvailable, results)
	if err != nil {
		return Output{}, fmt.Errorf("%s: answer generation failed: %w", LogPrefixProcessQuery, err)
	}

	return Output{Answer: answer, Trace: trace}, nil
}

// generateAnswer delegates prose generation with the admissible fact
// bundle only.
func (o *Orchestrator) generateAnswer(
	ctx context.Context,
	message, dest string,
	kbInfo kb.DestinationInfo,
	kbAvailable bool,
	results map[string]any,
) (string, error) {
	bundle := factBundle{
		UserMessage: message,
		Destination: dest,
		ToolResults: admissibleResults(results),
	}
	if kbAvailable {
		bundle.KBInfo = &kbInfo
	}

	contextJSON, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal fact bundle: %w", err)
	}

	resp, err := o.llm.GenerateContent(ctx, &llmprovider.Request{
		System: PromptAnswerSystem,
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf(
				"Voici le contexte (JSON) à utiliser pour répondre:\n%s\n\n"+
					"Rédige la meilleure réponse possible pour l'utilisateur.",
				contextJSON)},
		},
		Temperature: AnswerTemperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// admissibleResults enforces the no-hallucination constraint on the
// bundle: without a flights entry, no price field may reach the
// generator.
func admissibleResults(results map[string]any) map[string]any {
	if len(results) == 0 {
		return nil
	}
	if _, ok := results[string(model.ToolFlights)]; ok {
		return results
	}

	admissible := make(map[string]any, len(results))
	for name, payload := range results {
		fields, ok := payload.(map[string]any)
		if !ok {
			admissible[name] = payload
			continue
		}
		clean := make(map[string]any, len(fields))
		for k, v := range fields {
			clean[k] = v
		}
		for _, f := range priceFields {
			delete(clean, f)
		}
		admissible[name] = clean
	}
	return admissible
}

func terminal(requestID string, intent model.Intent, answer, reason string) Output {
	return Output{
		Answer: answer,
		Trace: model.DecisionTrace{
			RequestID:   requestID,
			Intent:      intent,
			KBUsed:      false,
			ToolsCalled: []string{},
			ToolDecision: model.ToolDecision{
				UseTools: false,
				Reason:   reason,
			},
		},
	}
}
