// Package types provides type definitions for the employee records flowing through the cleaning pipeline.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SentinelTermdate is the reserved "not terminated" date used by the source
// data and by flat-file exports. It only ever appears at serialization
// boundaries; in-memory code uses Termination instead.
const SentinelTermdate = "0000-00-00"

// DateLayout is the canonical calendar-date representation after cleaning.
const DateLayout = "2006-01-02"

// TermStatus distinguishes the three possible termination outcomes of a record.
type TermStatus int

const (
	// TermActive means the employee has no termination date (blank in the source).
	TermActive TermStatus = iota
	// TermTerminated means the employee has a real termination date.
	TermTerminated
	// TermUnknown means the source value was non-blank but unparseable.
	TermUnknown
)

// String returns a stable label for the status, matching the values stored in
// the employment_status column.
func (s TermStatus) String() string {
	switch s {
	case TermActive:
		return "active"
	case TermTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ParseTermStatus maps a stored status label back to a TermStatus.
func ParseTermStatus(s string) TermStatus {
	switch s {
	case "active":
		return TermActive
	case "terminated":
		return TermTerminated
	default:
		return TermUnknown
	}
}

// Termination is the normalized termdate field. It replaces the source's
// zero-date sentinel with an explicit variant so that duration math can never
// mistake "still employed" for a real historical date.
type Termination struct {
	Status TermStatus `json:"status"`
	// Date is set only when Status is TermTerminated.
	Date time.Time `json:"date,omitempty"`
}

// Active reports whether the employee is still employed.
func (t Termination) Active() bool {
	return t.Status == TermActive
}

// TerminatedBy reports whether the employee was terminated on or before asOf.
func (t Termination) TerminatedBy(asOf time.Time) bool {
	return t.Status == TermTerminated && !t.Date.After(asOf)
}

// String renders the field the way the cleaned flat file does: the sentinel
// for active employees, the canonical date for terminated ones, and an empty
// string when the source value was unparseable.
func (t Termination) String() string {
	switch t.Status {
	case TermActive:
		return SentinelTermdate
	case TermTerminated:
		return t.Date.Format(DateLayout)
	default:
		return ""
	}
}

// Terminated constructs a Termination for the given date.
func Terminated(date time.Time) Termination {
	return Termination{Status: TermTerminated, Date: date}
}

// RawEmployee is one row of the source flat file, untouched. All values are
// strings; the normalization pipeline owns every interpretation decision.
type RawEmployee struct {
	ID            string `json:"id" validate:"required"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Birthdate     string `json:"birthdate"`
	Gender        string `json:"gender"`
	Race          string `json:"race"`
	Department    string `json:"department"`
	JobTitle      string `json:"jobtitle"`
	Location      string `json:"location"`
	HireDate      string `json:"hire_date"`
	Termdate      string `json:"termdate"`
	LocationState string `json:"location_state"`
}

// Validate validates the RawEmployee using the validator.
func (r *RawEmployee) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Employee is one cleaned record. Date fields are nil when the source value
// was unparseable; Age is the snapshot value computed at cleaning time, not a
// live view — it drifts from reality until the pipeline runs again.
type Employee struct {
	ID            string      `json:"id"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Birthdate     *time.Time  `json:"birthdate,omitempty"`
	HireDate      *time.Time  `json:"hire_date,omitempty"`
	Termination   Termination `json:"termination"`
	Age           *int        `json:"age,omitempty"`
	Gender        string      `json:"gender"`
	Race          string      `json:"race"`
	Department    string      `json:"department"`
	JobTitle      string      `json:"jobtitle"`
	Location      string      `json:"location"`
	LocationState string      `json:"location_state"`
}

// AgeAt computes the employee's age as of the given date, independent of the
// stored snapshot. Returns nil when the birthdate is unknown or would produce
// a negative age.
func (e *Employee) AgeAt(asOf time.Time) *int {
	if e.Birthdate == nil {
		return nil
	}
	years := asOf.Year() - e.Birthdate.Year()
	if asOf.Month() < e.Birthdate.Month() ||
		(asOf.Month() == e.Birthdate.Month() && asOf.Day() < e.Birthdate.Day()) {
		years--
	}
	if years < 0 {
		return nil
	}
	return &years
}
