package timespec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"travel-concierge/pkg/textnorm"
)

// Parser extracts a time specification from free text.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string.
// The timezone determines the current year used when a month is
// mentioned without an explicit year.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	rangePattern     = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\s*/\s*(\d{4}-\d{2}-\d{2})\b`)
	yearMonthPattern = regexp.MustCompile(`\b(\d{4})-(\d{2})\b`)
	yearPattern      = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

// monthNames maps accent-stripped French month names to month numbers.
// Lookups run against normalized text, so "Décembre" matches "decembre".
var monthNames = map[string]time.Month{
	"janvier":   time.January,
	"fevrier":   time.February,
	"mars":      time.March,
	"avril":     time.April,
	"mai":       time.May,
	"juin":      time.June,
	"juillet":   time.July,
	"aout":      time.August,
	"septembre": time.September,
	"octobre":   time.October,
	"novembre":  time.November,
	"decembre":  time.December,
}

// monthOrder fixes the scan order for month names, longest names first
// so "juillet" is never shadowed by "juin"-style prefix collisions.
var monthOrder = []string{
	"septembre", "novembre", "decembre", "janvier", "fevrier",
	"juillet", "octobre", "avril", "aout", "mars", "juin", "mai",
}

// Parse extracts a time specification from raw user text.
// Priority: explicit date range, month name with optional explicit
// year, bare YYYY-MM token. Returns false when nothing matches.
// baseTime supplies the default year for bare month names.
func (p *Parser) Parse(text string, baseTime time.Time) (string, bool) {
	// 1) explicit "YYYY-MM-DD/YYYY-MM-DD" range
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		return m[1] + "/" + m[2], true
	}

	// 2) month name, with explicit 4-digit year if the text has one
	norm := textnorm.Normalize(text)
	words := strings.Fields(norm)
	for _, name := range monthOrder {
		if !containsWord(words, name) {
			continue
		}
		year := baseTime.In(p.location).Year()
		if ym := yearPattern.FindString(norm); ym != "" {
			year, _ = strconv.Atoi(ym)
		}
		return fmt.Sprintf("%04d-%02d", year, monthNames[name]), true
	}

	// 3) bare "YYYY-MM" token
	if m := yearMonthPattern.FindStringSubmatch(text); m != nil {
		if month, err := strconv.Atoi(m[2]); err == nil && month >= 1 && month <= 12 {
			return m[1] + "-" + m[2], true
		}
	}

	return "", false
}

// ExpandMonth converts a time specification into concrete start and
// end dates. A range token passes through unchanged; a month token is
// expanded to the given days of that month (e.g. 15/22 for flights,
// 15/16 for hotel stays).
func ExpandMonth(spec string, startDay, endDay int) (string, string, error) {
	spec = strings.TrimSpace(spec)

	if strings.Contains(spec, "/") {
		parts := strings.SplitN(spec, "/", 2)
		if len(parts) == 2 && len(parts[0]) == 10 && len(parts[1]) == 10 {
			return parts[0], parts[1], nil
		}
		return "", "", fmt.Errorf("invalid date range %q", spec)
	}

	t, err := time.Parse(MonthFormat, spec)
	if err != nil {
		return "", "", fmt.Errorf("invalid time spec %q: want YYYY-MM or YYYY-MM-DD/YYYY-MM-DD", spec)
	}

	start := time.Date(t.Year(), t.Month(), startDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), t.Month(), endDay, 0, 0, 0, 0, time.UTC)
	return start.Format(DateFormat), end.Format(DateFormat), nil
}

func containsWord(words []string, w string) bool {
	for _, word := range words {
		if word == w {
			return true
		}
	}
	return false
}
