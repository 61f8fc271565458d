package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Phrase and keyword sets below are stored in normalized form
// (lowercase, accents stripped) so they match normalized messages.

// smallTalkPhrases covers greetings, thanks, farewells, identity questions.
var smallTalkPhrases = []string{
	"bonjour", "salut", "hello", "bonsoir",
	"ca va", "comment ca va", "merci", "merci beaucoup",
	"au revoir", "a bientot",
	"tu es qui", "qui es tu", "comment tu t appelles",
}

// travelKeywords marks a message as an actionable travel request.
var travelKeywords = []string{
	"partir", "voyage", "voyager", "aller", "visiter", "destination",
	"vol", "vols", "avion", "train", "bus",
	"hotel", "logement", "hebergement",
	"meteo", "temps", "climat",
	"budget", "prix", "reserver", "reservation",
	"itineraire", "dates", "mois",
}

// affirmations are short acknowledgements treated as small talk
// when the message carries no travel signal.
var affirmations = []string{"ok", "super", "cool", "merci", "top"}

// Escalation configuration
const (
	EscalationTemperature = 0.2

	PromptClassifySystem = `Tu es un classificateur d'intention.
Tu dois répondre STRICTEMENT par UNE SEULE catégorie parmi:
- small_talk
- intent_metier
- hors_perimetre
- ambigu

Définitions:
small_talk: salutations, remerciements, politesse, conversation légère.
intent_metier: planification voyage (destination, période, météo, vols, hôtels, budget, itinéraire).
hors_perimetre: tout le reste (math, code, questions générales hors voyage).
ambigu: trop court ou manque d'infos pour décider.

Règles:
- Réponds uniquement par le mot exact de la catégorie (sans ponctuation).
- Ne justifie pas.`
)

// Thresholds for the rule cascade
const (
	maxAffirmationWords = 4
	maxAmbiguousWords   = 2
)
