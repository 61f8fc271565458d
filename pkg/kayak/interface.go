package kayak

import "context"

// IKayak defines the interface for the Kayak scraping client.
// Flight searches take IATA airport codes, hotel searches take
// the stay slug and place ID Kayak assigns to each city.
type IKayak interface {
	// SearchFlights scrapes a round-trip flight results page for the cheapest price
	SearchFlights(ctx context.Context, origin, destination, departDate, returnDate string) (*FlightQuote, error)

	// SearchHotels scrapes a stays results page and summarizes the lowest prices
	SearchHotels(ctx context.Context, slug string, placeID int, checkin, checkout string) (*HotelQuote, error)
}

// New creates a new Kayak client with the given configuration
func New(cfg Config) IKayak {
	cfg.Validate()
	return newKayakImpl(cfg)
}
