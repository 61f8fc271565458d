// Package parser pulls travel entities out of one user message:
// a vocabulary destination, an explicit origin/destination route,
// and a time specification.
package parser

import (
	"regexp"
	"strings"
	"time"

	"travel-concierge/internal/kb"
	"travel-concierge/internal/model"
	"travel-concierge/pkg/textnorm"
	"travel-concierge/pkg/timespec"
)

// routePatterns express "from A to B", tried in priority order.
// They run against the raw lowercased message because normalization
// destroys the arrow form; captures are normalized afterwards.
var routePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bde\s+([\p{L}\-]+)\s+[aà]\s+([\p{L}\-]+)`),
	regexp.MustCompile(`\bdepuis\s+([\p{L}\-]+)\s+vers\s+([\p{L}\-]+)`),
	regexp.MustCompile(`([\p{L}\-]+)\s*(?:->|→)\s*([\p{L}\-]+)`),
}

// Extractor bundles entity extraction for one configured timezone.
type Extractor struct {
	ts *timespec.Parser
}

// New creates an Extractor. The timezone feeds the time-spec parser's
// default year.
func New(timezone string) (*Extractor, error) {
	ts, err := timespec.NewParser(timezone)
	if err != nil {
		return nil, err
	}
	return &Extractor{ts: ts}, nil
}

// Extract pulls all entities from one message. Extraction is
// independent of intent; absent entities are empty strings.
func (e *Extractor) Extract(message string, now time.Time) model.Entities {
	entities := model.Entities{
		Destination: Destination(message),
	}
	entities.Origin, entities.RouteDest = Route(message)
	if spec, ok := e.ts.Parse(message, now); ok {
		entities.TimeSpec = spec
	}
	return entities
}

// Destination scans the city vocabulary in priority order and returns
// the first city whose name appears in the normalized message.
func Destination(message string) string {
	norm := textnorm.Normalize(message)
	for _, city := range kb.Cities {
		if strings.Contains(norm, city) {
			return city
		}
	}
	return ""
}

// Route extracts an (origin, destination) pair from an explicit route
// phrase. It accepts any token shape the pattern captures and does not
// consult the city vocabulary.
func Route(message string) (string, string) {
	lower := strings.ToLower(message)
	for _, pattern := range routePatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			return textnorm.Normalize(m[1]), textnorm.Normalize(m[2])
		}
	}
	return "", ""
}
