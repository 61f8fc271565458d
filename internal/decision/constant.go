package decision

// Log prefixes
const (
	LogPrefixDecide = "internal.decision.Decide"
)

// Trigger keyword sets, in normalized form. A match forces the tool
// into the final set when a destination is present, regardless of what
// the LLM suggested.
var (
	weatherTriggers = []string{"meteo", "temps", "aujourd hui", "actuel", "maintenant"}
	flightTriggers  = []string{"vol", "billet", "avion", "prix"}
	hotelTriggers   = []string{"hotel", "logement", "nuit"}
)

// Fixed reason fragments
const (
	ReasonNoDestination   = "No destination detected"
	ReasonOverrideWeather = "règle déterministe: demande météo détectée"
	ReasonOverrideFlights = "règle déterministe: demande de vols détectée"
	ReasonOverrideHotels  = "règle déterministe: demande d'hébergement détectée"
)

// LLM configuration
const (
	DecideTemperature = 0.2

	PromptDecideSystem = `Tu es le module de décision d'un agent de voyage.
Ta mission: décider si des données temps réel sont nécessaires.
Tu dois répondre STRICTEMENT en JSON valide (pas de texte autour).

RÈGLES:
- Si la KB suffit: use_tools=false.
- Si l'utilisateur demande météo actuelle => tool weather.
- Si l'utilisateur demande prix / horaires / disponibilité vols => tool flights.
- Si l'utilisateur demande hôtels / prix / disponibilité hébergements => tool hotels.
- Si destination inconnue => use_tools=false.
- N'invente pas de ville.
- Si l'utilisateur ne donne pas de mois, mets month=null.
- Pour flights, si l'utilisateur ne donne pas d'origine, mets from=null.

TOOLS POSSIBLES: ["weather", "flights", "hotels"]

FORMAT JSON EXACT:
{
  "use_tools": true|false,
  "tools": [
    {"name": "weather|flights|hotels", "params": { ... }}
  ],
  "reason": "string courte"
}`
)
