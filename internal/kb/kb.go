// Package kb holds the static per-destination reference data: curated
// travel facts, the city vocabulary, and the airport and stay lookup
// tables. Everything here is loaded once and never mutated.
package kb

import "strings"

// Cities is the destination vocabulary in extraction priority order.
var Cities = []string{"lisbonne", "paris", "rome", "madrid", "barcelone", "bangkok"}

var destinations = map[string]DestinationInfo{
	"lisbonne": {
		BestPeriods: []string{"mars", "avril", "mai"},
		Climate:     "doux et ensoleillé",
		Tips: []string{
			"Ville très marchable",
			"Transports publics abordables",
			"Printemps idéal pour éviter la foule",
		},
	},
	"paris": {
		BestPeriods: []string{"mai", "juin", "septembre"},
		Climate:     "tempéré",
		Tips: []string{
			"Éviter août pour les fermetures",
			"Beaucoup de musées gratuits certains jours",
			"Printemps et automne plus agréables",
		},
	},
	"rome": {
		BestPeriods: []string{"avril", "mai", "septembre", "octobre"},
		Climate:     "méditerranéen",
		Tips: []string{
			"Été très chaud",
			"Beaucoup de sites à pied",
			"Réserver les monuments à l'avance",
		},
	},
	"madrid": {
		BestPeriods: []string{"avril", "mai", "septembre"},
		Climate:     "sec et chaud",
		Tips: []string{
			"Été caniculaire",
			"Ville animée toute l'année",
			"Musées majeurs concentrés",
		},
	},
	"barcelone": {
		BestPeriods: []string{"mai", "juin", "septembre"},
		Climate:     "méditerranéen",
		Tips: []string{
			"Mélange plage et culture",
			"Éviter août pour la foule",
			"Transports très efficaces",
		},
	},
	"bangkok": {
		BestPeriods: []string{"novembre", "décembre", "janvier", "février"},
		Climate:     "tropical",
		Tips: []string{
			"Éviter la saison des pluies",
			"Ville très dense",
			"Climatisation omniprésente",
		},
	},
}

var airports = map[string]string{
	"paris":     "CDG",
	"bangkok":   "BKK",
	"lisbonne":  "LIS",
	"rome":      "FCO",
	"madrid":    "MAD",
	"barcelone": "BCN",
}

// displayNames maps city keys to the English names external sources expect.
var displayNames = map[string]string{
	"lisbonne":  "Lisbon",
	"paris":     "Paris",
	"rome":      "Rome",
	"madrid":    "Madrid",
	"barcelone": "Barcelona",
	"bangkok":   "Bangkok",
}

var stays = map[string]StayLocation{
	"bangkok":   {Slug: "Bangkok,Province-de-Bangkok,Thailande", PlaceID: 18056},
	"paris":     {Slug: "Paris,Ile-de-France,France", PlaceID: 36014},
	"lisbonne":  {Slug: "Lisbonne,Region-de-Lisbonne,Portugal", PlaceID: 2172},
	"rome":      {Slug: "Rome,Latium,Italie", PlaceID: 25465},
	"madrid":    {Slug: "Madrid,Communaute-de-Madrid,Espagne", PlaceID: 32213},
	"barcelone": {Slug: "Barcelone,Catalogne,Espagne", PlaceID: 22567},
}

// DestinationInfoFor returns the curated facts for a city key, or false on miss.
func DestinationInfoFor(city string) (DestinationInfo, bool) {
	info, ok := destinations[strings.ToLower(city)]
	return info, ok
}

// AirportCode returns the IATA code for a city key, or empty on miss.
func AirportCode(city string) string {
	return airports[strings.ToLower(city)]
}

// DisplayName returns the external-facing city name. Unknown cities
// pass through unchanged.
func DisplayName(city string) string {
	if name, ok := displayNames[strings.ToLower(city)]; ok {
		return name
	}
	return city
}

// StayLocationFor returns the Kayak stays identifier for a city key, or false on miss.
func StayLocationFor(city string) (StayLocation, bool) {
	loc, ok := stays[strings.ToLower(city)]
	return loc, ok
}
