package reports

import (
	"time"

	"github.com/jonathan/hr-analytics/internal/types"
)

// daysPerYear converts day spans to years for tenure math, matching the
// reporting convention of the source dataset.
const daysPerYear = 365.0

// activeAdult is the standard composition filter: currently employed and at
// least 18 per the stored snapshot age. A record whose age could not be
// derived is excluded, never defaulted in.
func activeAdult(e *types.Employee) bool {
	return e.Age != nil && *e.Age >= 18 && e.Termination.Active()
}

// adult admits any record with a known snapshot age of 18 or more, regardless
// of termination status. Turnover denominators use this.
func adult(e *types.Employee) bool {
	return e.Age != nil && *e.Age >= 18
}

// tenureYears returns the elapsed years between hire and termination. The
// second return is false when the record has no usable pair of dates: an
// active or unknown termdate never participates in duration math.
func tenureYears(e *types.Employee, asOf time.Time) (float64, bool) {
	if e.HireDate == nil || !e.Termination.TerminatedBy(asOf) {
		return 0, false
	}
	days := e.Termination.Date.Sub(*e.HireDate).Hours() / 24
	return days / daysPerYear, true
}
