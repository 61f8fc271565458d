package wttr

import "time"

const (
	// DefaultBaseURL is the public wttr.in endpoint
	DefaultBaseURL = "https://wttr.in"

	// DefaultTimeout is the maximum duration for one weather lookup
	DefaultTimeout = 10 * time.Second

	// userAgent mimics a desktop browser, wttr.in serves plain text either way
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)
