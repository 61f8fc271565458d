package timespec_test

import (
	"testing"
	"time"

	"travel-concierge/pkg/timespec"
)

func TestNewParser(t *testing.T) {
	_, err := timespec.NewParser("Europe/Paris")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = timespec.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := timespec.NewParser("UTC")
	baseTime := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "explicit date range",
			text:  "vols du 2026-01-30/2026-02-20 vers Rome",
			want:  "2026-01-30/2026-02-20",
			found: true,
		},
		{
			name:  "month name defaults to current year",
			text:  "je veux partir a lisbonne en mai",
			want:  "2026-05",
			found: true,
		},
		{
			name:  "accented month name",
			text:  "un vol pour Bangkok en Décembre",
			want:  "2026-12",
			found: true,
		},
		{
			name:  "month name with explicit year",
			text:  "hotel a Madrid en septembre 2027",
			want:  "2027-09",
			found: true,
		},
		{
			name:  "bare year-month token",
			text:  "dispo 2026-07 pour Barcelone",
			want:  "2026-07",
			found: true,
		},
		{
			name:  "range wins over month name",
			text:  "en mai ou 2026-03-01/2026-03-08",
			want:  "2026-03-01/2026-03-08",
			found: true,
		},
		{
			name:  "invalid month number ignored",
			text:  "code 2026-19 sans date",
			found: false,
		},
		{
			name:  "no time at all",
			text:  "vols de Paris a Bangkok",
			found: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parser.Parse(tc.text, baseTime)
			if ok != tc.found {
				t.Fatalf("Parse(%q) found=%v, want %v", tc.text, ok, tc.found)
			}
			if ok && got != tc.want {
				t.Errorf("Parse(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExpandMonth(t *testing.T) {
	t.Run("month token expands to days", func(t *testing.T) {
		start, end, err := timespec.ExpandMonth("2026-05", 15, 22)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start != "2026-05-15" || end != "2026-05-22" {
			t.Errorf("got %s/%s, want 2026-05-15/2026-05-22", start, end)
		}
	})

	t.Run("range passes through", func(t *testing.T) {
		start, end, err := timespec.ExpandMonth("2026-01-30/2026-02-20", 15, 16)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start != "2026-01-30" || end != "2026-02-20" {
			t.Errorf("got %s/%s, want range unchanged", start, end)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, _, err := timespec.ExpandMonth("mai", 15, 22); err == nil {
			t.Errorf("expected error for invalid spec")
		}
		if _, _, err := timespec.ExpandMonth("2026-01/2026", 15, 22); err == nil {
			t.Errorf("expected error for malformed range")
		}
	})
}
