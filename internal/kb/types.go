package kb

// DestinationInfo is the curated travel knowledge for one city.
type DestinationInfo struct {
	BestPeriods []string `json:"best_periods"`
	Climate     string   `json:"climate"`
	Tips        []string `json:"tips"`
}

// StayLocation is the Kayak stays identifier for one city.
type StayLocation struct {
	Slug    string
	PlaceID int
}
