package model

// Intent is the routing category assigned to an incoming message.
type Intent string

const (
	// IntentSmallTalk covers greetings, thanks, and short phatic messages
	IntentSmallTalk Intent = "small_talk"
	// IntentTravel covers actionable travel requests
	IntentTravel Intent = "intent_metier"
	// IntentOutOfScope covers messages the assistant does not handle
	IntentOutOfScope Intent = "hors_perimetre"
	// IntentAmbiguous covers messages too short to route
	IntentAmbiguous Intent = "ambigu"
)

// Valid reports whether the intent is one of the four routing categories.
func (i Intent) Valid() bool {
	switch i {
	case IntentSmallTalk, IntentTravel, IntentOutOfScope, IntentAmbiguous:
		return true
	}
	return false
}
