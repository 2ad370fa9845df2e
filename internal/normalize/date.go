// Package normalize repairs the inconsistent date encodings of the source
// flat file and derives the age column. It is deliberately narrow: only the
// formats the source data actually contains are recognized, and anything else
// becomes an explicit "unrepresentable" outcome rather than a guessed date.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/hr-analytics/internal/types"
)

// ErrMalformedTermdate is returned for a termdate that is neither blank nor a
// UTC-marked timestamp. The source data only ever contains those two shapes,
// so anything else is flagged instead of being silently mapped to the
// "not terminated" sentinel.
var ErrMalformedTermdate = errors.New("termdate is neither blank nor a UTC timestamp")

const (
	slashLayout    = "01/02/2006"
	dashLayout     = "01-02-2006"
	termdateLayout = "2006-01-02 15:04:05 UTC"
)

// ParseDate normalizes a birthdate or hire_date value. The source encodes
// dates in month-day-year order with either slashes or dashes; the separator
// is detected from the raw string. Any value matching neither pattern maps to
// nil. No other formats are attempted.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var layout string
	switch {
	case strings.Contains(raw, "/"):
		layout = slashLayout
	case strings.Contains(raw, "-"):
		layout = dashLayout
	default:
		return nil
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// ParseTermdate normalizes a termdate value. A blank or whitespace-only value
// means "still employed". A non-blank value must be a full timestamp with an
// explicit UTC marker; its date component is kept and the time of day is
// discarded. Anything else returns ErrMalformedTermdate alongside a
// Termination with status TermUnknown, so the caller keeps the row but never
// mistakes the value for real data.
func ParseTermdate(raw string) (types.Termination, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Termination{Status: types.TermActive}, nil
	}

	t, err := time.Parse(termdateLayout, raw)
	if err != nil {
		return types.Termination{Status: types.TermUnknown},
			fmt.Errorf("%w: %q", ErrMalformedTermdate, raw)
	}
	return types.Terminated(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
}
