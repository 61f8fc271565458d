// Package clarify implements the clarification gate: per-tool
// minimum-parameter contracts checked before any tool is invoked.
package clarify

import (
	"travel-concierge/internal/kb"
	"travel-concierge/internal/model"
)

// Fixed clarification questions, keyed by the first missing field.
const (
	QuestionWeatherCity  = "Pour quelle ville souhaitez-vous la météo ?"
	QuestionHotelCity    = "Dans quelle ville cherchez-vous un hébergement ?"
	QuestionHotelDates   = "Pour quelles dates ou quel mois cherchez-vous un hébergement ?"
	QuestionFlightOrigin = "De quelle ville partez-vous ? (je connais Paris, Bangkok, Lisbonne, Rome, Madrid et Barcelone)"
	QuestionFlightDest   = "Vers quelle ville souhaitez-vous voler ? (je connais Paris, Bangkok, Lisbonne, Rome, Madrid et Barcelone)"
	QuestionFlightDates  = "Pour quelles dates ou quel mois souhaitez-vous voler ?"
)

// Check verifies each requested tool's contract in set order and
// returns the prompt for the first failure, or nil when every tool
// can run.
func Check(decision model.ToolDecision, entities model.Entities) *model.ClarificationPrompt {
	if !decision.UseTools {
		return nil
	}
	for _, tool := range decision.Tools {
		if p := CheckTool(tool.Name, entities); p != nil {
			return p
		}
	}
	return nil
}

// CheckTool verifies one tool's minimum-parameter contract:
//
//	weather: destination
//	hotels:  destination and a resolved time spec
//	flights: resolved origin and destination airport codes and a time spec
//
// The returned prompt names the first missing field, nil means the
// tool can run.
func CheckTool(name model.ToolName, entities model.Entities) *model.ClarificationPrompt {
	dest := entities.EffectiveDestination()

	switch name {
	case model.ToolWeather:
		if dest == "" {
			return prompt(name, "destination", QuestionWeatherCity)
		}

	case model.ToolHotels:
		if dest == "" {
			return prompt(name, "destination", QuestionHotelCity)
		}
		if entities.TimeSpec == "" {
			return prompt(name, "timespec", QuestionHotelDates)
		}

	case model.ToolFlights:
		if entities.Origin == "" || kb.AirportCode(entities.Origin) == "" {
			return prompt(name, "origin_airport", QuestionFlightOrigin)
		}
		if dest == "" || kb.AirportCode(dest) == "" {
			return prompt(name, "destination_airport", QuestionFlightDest)
		}
		if entities.TimeSpec == "" {
			return prompt(name, "timespec", QuestionFlightDates)
		}
	}

	return nil
}

func prompt(tool model.ToolName, field, question string) *model.ClarificationPrompt {
	return &model.ClarificationPrompt{
		Tool:         tool,
		MissingField: field,
		Question:     question,
	}
}
