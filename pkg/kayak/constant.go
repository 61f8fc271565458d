package kayak

import "time"

const (
	// DefaultBaseURL is the French Kayak site
	DefaultBaseURL = "https://www.kayak.fr"

	// DefaultFlightTimeout bounds one flight search page fetch
	DefaultFlightTimeout = 20 * time.Second

	// DefaultHotelTimeout bounds one stays page fetch
	DefaultHotelTimeout = 25 * time.Second

	// PriceNotFound is the placeholder reported when no price could be extracted
	PriceNotFound = "Prix non trouvé"

	// hotelSampleSize caps how many of the lowest prices feed the summary
	hotelSampleSize = 10

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"
)
