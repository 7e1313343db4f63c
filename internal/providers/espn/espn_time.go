package espn

import (
	"strings"
	"time"
)

// eventTimeLayouts covers both the full RFC3339 timestamps and the
// shorter "YYYY-MM-DDThh:mmZ" strings the scoreboard endpoints return.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// parseEventTime parses an event date string leniently. The zero time
// and false are returned when no layout matches.
func parseEventTime(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range eventTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
