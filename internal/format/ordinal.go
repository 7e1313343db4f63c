// Package format renders domain records into the display strings the
// API and clients show: status lines, half-inning labels, team logos,
// and division lookups. Everything here is pure and allocation-light.
package format

import "strconv"

// Ordinal renders n with its English ordinal suffix ("1st", "12th").
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// teens always take th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
