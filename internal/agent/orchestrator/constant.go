package orchestrator

// Log prefixes
const (
	LogPrefixProcessQuery = "internal.agent.orchestrator.ProcessQuery"
)

// Terminal answers for intents that never reach the tool pipeline.
const (
	AnswerSmallTalk = "Bonjour ! Je suis votre assistant voyage. Dites-moi où vous souhaitez " +
		"partir et je vous aide à planifier : destinations, meilleures périodes, météo, vols, hôtels."

	AnswerOutOfScope = "Désolé, je ne peux vous aider que pour la planification de voyages " +
		"(destinations, périodes, météo, vols, hébergements)."
)

// Fixed decision-trace reasons for terminal paths.
const (
	ReasonSmallTalk  = "small talk, no travel processing needed"
	ReasonOutOfScope = "out of scope, no travel processing needed"
)

// Prose generation
const (
	AnswerTemperature = 0.2

	PromptAnswerSystem = `Tu es un agent de planification de voyage.
Objectif: réponse utile, claire, actionnable.
Contraintes:
1) Utilise les infos de la KB si disponibles.
2) Utilise les résultats live si fournis.
3) Si info manquante, dis-le et propose la prochaine étape.
4) Pour un trajet, formule-le "de ORIGINE à DESTINATION".
5) Réponse concise: 6 à 10 lignes max.
6) Ne mentionne jamais 'KB', 'MCP', 'tool', 'outil', 'scraping'.`
)

// priceFields never reach the prose generator unless a flight result
// is present in the bundle.
var priceFields = []string{"cheapest_price", "min_price_eur", "avg_price_eur"}
