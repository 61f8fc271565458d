package timespec

// A time specification is one of two wire formats:
//   - a month token "YYYY-MM"
//   - a date-range token "YYYY-MM-DD/YYYY-MM-DD"
//
// Both are produced by Parser.Parse and consumed by the travel data
// clients, which expand a month token into concrete dates.
const (
	MonthFormat = "2006-01"
	DateFormat  = "2006-01-02"
)
