package kayak

import (
	"net/http"
	"time"
)

// Config configures the Kayak client.
type Config struct {
	BaseURL       string
	FlightTimeout time.Duration
	HotelTimeout  time.Duration
}

// Validate fills defaults.
func (c *Config) Validate() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.FlightTimeout == 0 {
		c.FlightTimeout = DefaultFlightTimeout
	}
	if c.HotelTimeout == 0 {
		c.HotelTimeout = DefaultHotelTimeout
	}
}

// FlightQuote is one round-trip flight search result.
type FlightQuote struct {
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	// CheapestPrice is the first price found on the page, or PriceNotFound
	CheapestPrice string
	URL           string
	ScrapedAt     time.Time
}

// HotelQuote summarizes the lowest prices on a stays page.
type HotelQuote struct {
	Checkin  string
	Checkout string
	// MinPriceEUR and AvgPriceEUR are zero when SampleSize is zero
	MinPriceEUR int
	AvgPriceEUR int
	// SampleSize is how many of the lowest prices fed the summary, at most ten
	SampleSize int
	URL        string
	ScrapedAt  time.Time
}

type kayakImpl struct {
	baseURL      string
	flightClient *http.Client
	hotelClient  *http.Client
}
