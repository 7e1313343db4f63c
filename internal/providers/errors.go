package providers

import (
	"errors"
	"fmt"
	"strings"

	"quiet-scores-service/internal/domain"
)

// ErrAllSportsFailed signals that no sport's scoreboard could be fetched.
// A single sport failing is logged and tolerated; the day's list is only
// an error when every league is unreachable.
var ErrAllSportsFailed = errors.New("all sport scoreboards failed")

// SportError records which sport's fetch failed and why.
type SportError struct {
	Sport domain.Sport
	Err   error
}

func (e *SportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Sport, e.Err)
}

func (e *SportError) Unwrap() error { return e.Err }

// AllFailedError aggregates the per-sport failures behind ErrAllSportsFailed.
type AllFailedError struct {
	Failures []SportError
}

func (e *AllFailedError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Error())
	}
	return "all sport scoreboards failed: " + strings.Join(parts, "; ")
}

func (e *AllFailedError) Unwrap() error { return ErrAllSportsFailed }
