package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParamLayout is the compact YYYYMMDD form the scoreboard API's dates
// query parameter expects.
const ParamLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateParam formats a time as YYYYMMDD for scoreboard URLs.
func FormatDateParam(t time.Time) string {
	return t.Format(ParamLayout)
}

// DisplayTime renders a kickoff/first-pitch time as a short clock
// string ("7:05 PM") for scheduled games.
func DisplayTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// DisplayDate renders a short human date ("Mon, Apr 1").
func DisplayDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}
