package domain

import (
	"fmt"
	"strings"
)

// Bases is the set of occupied bases encoded as a 3-bit set.
// The zero value means empty bases.
type Bases uint8

const (
	BaseFirst Bases = 1 << iota
	BaseSecond
	BaseThird

	BasesEmpty  Bases = 0
	BasesLoaded Bases = BaseFirst | BaseSecond | BaseThird
)

// NewBases builds a base set from the three occupancy flags.
func NewBases(first, second, third bool) Bases {
	var b Bases
	if first {
		b |= BaseFirst
	}
	if second {
		b |= BaseSecond
	}
	if third {
		b |= BaseThird
	}
	return b
}

// On reports whether the given base bit is occupied.
func (b Bases) On(base Bases) bool {
	return b&base != 0
}

// Runners returns the number of occupied bases.
func (b Bases) Runners() int {
	n := 0
	for _, base := range []Bases{BaseFirst, BaseSecond, BaseThird} {
		if b.On(base) {
			n++
		}
	}
	return n
}

// String renders the canonical prose encoding used by the scoreboard:
// one of "empty", "1st", "2nd", "3rd", "1st & 2nd", "1st & 3rd",
// "2nd & 3rd", "loaded".
func (b Bases) String() string {
	switch b & BasesLoaded {
	case BasesEmpty:
		return "empty"
	case BasesLoaded:
		return "loaded"
	}
	var parts []string
	if b.On(BaseFirst) {
		parts = append(parts, "1st")
	}
	if b.On(BaseSecond) {
		parts = append(parts, "2nd")
	}
	if b.On(BaseThird) {
		parts = append(parts, "3rd")
	}
	return strings.Join(parts, " & ")
}

// ParseBases maps a prose encoding back to the bit set. Unknown text
// parses as empty with an error so callers can fall back safely.
func ParseBases(s string) (Bases, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "empty":
		return BasesEmpty, nil
	case "loaded":
		return BasesLoaded, nil
	case "1st":
		return BaseFirst, nil
	case "2nd":
		return BaseSecond, nil
	case "3rd":
		return BaseThird, nil
	case "1st & 2nd":
		return BaseFirst | BaseSecond, nil
	case "1st & 3rd":
		return BaseFirst | BaseThird, nil
	case "2nd & 3rd":
		return BaseSecond | BaseThird, nil
	}
	return BasesEmpty, fmt.Errorf("unrecognized bases encoding %q", s)
}

// MarshalJSON encodes bases as the prose string so API payloads and
// snapshots stay human readable.
func (b Bases) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON accepts the prose encoding; unknown text degrades to empty.
func (b *Bases) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseBases(s)
	if err != nil {
		*b = BasesEmpty
		return nil
	}
	*b = parsed
	return nil
}
