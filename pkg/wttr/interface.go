package wttr

import "context"

// IWttr defines the interface for the wttr.in weather client.
type IWttr interface {
	// Current returns a one-line French weather summary for a city
	Current(ctx context.Context, city string) (*Report, error)
}

// New creates a new wttr.in client with the given configuration
func New(cfg Config) IWttr {
	cfg.Validate()
	return newWttrImpl(cfg)
}
