package db

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"github.com/jonathan/hr-analytics/internal/types"
)

// CleaningRun represents one execution of the normalization pipeline.
type CleaningRun struct {
	ID                 uuid.UUID `json:"id"`
	SourceFile         string    `json:"source_file"`
	AsOf               time.Time `json:"as_of"`
	Status             string    `json:"status"`
	TotalRows          int       `json:"total_rows"`
	MissingBirthdates  int       `json:"missing_birthdates"`
	MissingHireDates   int       `json:"missing_hire_dates"`
	MalformedTermdates int       `json:"malformed_termdates"`
	CreatedAt          time.Time `json:"created_at"`
	CompletedAt        null.Time `json:"completed_at,omitempty"`
}

// RunStats are the row-level counts recorded when a run completes.
type RunStats struct {
	TotalRows          int
	MissingBirthdates  int
	MissingHireDates   int
	MalformedTermdates int
}

// EmployeeRow is the employees table shape. Nullable columns use null types
// so that an unparseable source value stays distinguishable from a real one
// all the way through storage.
type EmployeeRow struct {
	ID               string      `json:"id"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	Birthdate        null.Time   `json:"birthdate"`
	Gender           string      `json:"gender"`
	Race             string      `json:"race"`
	Department       string      `json:"department"`
	JobTitle         string      `json:"jobtitle"`
	Location         string      `json:"location"`
	HireDate         null.Time   `json:"hire_date"`
	Termdate         null.Time   `json:"termdate"`
	EmploymentStatus string      `json:"employment_status"`
	LocationState    string      `json:"location_state"`
	Age              null.Int    `json:"age"`
	RunID            uuid.UUID   `json:"run_id"`
}

// rowFromEmployee maps a cleaned record to its table shape. The termdate
// column holds a real date only for terminated employees; the active sentinel
// and the unknown case are both carried by employment_status.
func rowFromEmployee(e *types.Employee, runID uuid.UUID) EmployeeRow {
	row := EmployeeRow{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Birthdate:        null.TimeFromPtr(e.Birthdate),
		Gender:           e.Gender,
		Race:             e.Race,
		Department:       e.Department,
		JobTitle:         e.JobTitle,
		Location:         e.Location,
		HireDate:         null.TimeFromPtr(e.HireDate),
		EmploymentStatus: e.Termination.Status.String(),
		LocationState:    e.LocationState,
		RunID:            runID,
	}
	if e.Termination.Status == types.TermTerminated {
		row.Termdate = null.TimeFrom(e.Termination.Date)
	}
	if e.Age != nil {
		row.Age = null.IntFrom(*e.Age)
	}
	return row
}

// Employee maps the table shape back to the domain record.
func (r *EmployeeRow) Employee() types.Employee {
	e := types.Employee{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Birthdate:     r.Birthdate.Ptr(),
		HireDate:      r.HireDate.Ptr(),
		Gender:        r.Gender,
		Race:          r.Race,
		Department:    r.Department,
		JobTitle:      r.JobTitle,
		Location:      r.Location,
		LocationState: r.LocationState,
	}

	status := types.ParseTermStatus(r.EmploymentStatus)
	if status == types.TermTerminated && r.Termdate.Valid {
		e.Termination = types.Terminated(r.Termdate.Time)
	} else {
		e.Termination = types.Termination{Status: status}
	}

	if r.Age.Valid {
		age := r.Age.Int
		e.Age = &age
	}
	return e
}
