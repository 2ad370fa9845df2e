package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hr-analytics/internal/types"
)

func TestRowFromEmployee_AllFields(t *testing.T) {
	birth := time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)
	term := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	age := 33
	runID := uuid.New()

	e := types.Employee{
		ID: "00-1234", FirstName: "Ada", LastName: "Smith",
		Birthdate: &birth, HireDate: &hire, Age: &age,
		Termination: types.Terminated(term),
		Gender:      "Female", Race: "Asian", Department: "Engineering",
		JobTitle: "Software Engineer", Location: "Headquarters", LocationState: "Ohio",
	}

	row := rowFromEmployee(&e, runID)

	assert.Equal(t, "00-1234", row.ID)
	require.True(t, row.Birthdate.Valid)
	assert.Equal(t, birth, row.Birthdate.Time)
	require.True(t, row.Termdate.Valid)
	assert.Equal(t, term, row.Termdate.Time)
	assert.Equal(t, "terminated", row.EmploymentStatus)
	require.True(t, row.Age.Valid)
	assert.EqualValues(t, 33, row.Age.Int)
	assert.Equal(t, runID, row.RunID)
}

func TestRowFromEmployee_ActiveHasNullTermdate(t *testing.T) {
	e := types.Employee{ID: "00-1", Termination: types.Termination{Status: types.TermActive}}
	row := rowFromEmployee(&e, uuid.New())

	assert.False(t, row.Termdate.Valid)
	assert.Equal(t, "active", row.EmploymentStatus)
}

func TestRowFromEmployee_UnknownFieldsStayNull(t *testing.T) {
	e := types.Employee{ID: "00-1", Termination: types.Termination{Status: types.TermUnknown}}
	row := rowFromEmployee(&e, uuid.New())

	assert.False(t, row.Birthdate.Valid)
	assert.False(t, row.HireDate.Valid)
	assert.False(t, row.Termdate.Valid)
	assert.False(t, row.Age.Valid)
	assert.Equal(t, "unknown", row.EmploymentStatus)
}

func TestEmployeeRow_RoundTrip(t *testing.T) {
	birth := time.Date(1985, time.May, 20, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2010, time.June, 1, 0, 0, 0, 0, time.UTC)
	age := 38

	original := types.Employee{
		ID: "00-5678", FirstName: "Ben", LastName: "Jones",
		Birthdate: &birth, HireDate: &hire, Age: &age,
		Termination: types.Terminated(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)),
		Gender:      "Male", Race: "White", Department: "Sales",
		JobTitle: "Account Executive", Location: "Remote", LocationState: "Michigan",
	}

	row := rowFromEmployee(&original, uuid.New())
	restored := row.Employee()

	assert.Equal(t, original, restored)
}

func TestEmployeeRow_RoundTripActive(t *testing.T) {
	original := types.Employee{
		ID:          "00-9",
		Termination: types.Termination{Status: types.TermActive},
	}

	row := rowFromEmployee(&original, uuid.New())
	restored := row.Employee()

	assert.Equal(t, original, restored)
	assert.Nil(t, restored.Birthdate)
	assert.Nil(t, restored.Age)
}

func TestEmployeeRow_TerminatedWithoutDate(t *testing.T) {
	// A terminated status with a null termdate column is inconsistent data;
	// reading it back must not invent a date.
	row := EmployeeRow{ID: "00-1", EmploymentStatus: "terminated"}
	e := row.Employee()
	assert.Equal(t, types.TermTerminated, e.Termination.Status)
	assert.True(t, e.Termination.Date.IsZero())
}
