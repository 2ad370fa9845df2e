//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTermination_StringSentinel(t *testing.T) {
	active := Termination{Status: TermActive}
	assert.Equal(t, "0000-00-00", active.String())
}

func TestTermination_StringTerminated(t *testing.T) {
	term := Terminated(date(2021, time.January, 1))
	assert.Equal(t, "2021-01-01", term.String())
}

func TestTermination_StringUnknown(t *testing.T) {
	unknown := Termination{Status: TermUnknown}
	assert.Empty(t, unknown.String())
}

func TestTermination_TerminatedBy(t *testing.T) {
	asOf := date(2024, time.January, 1)

	tests := []struct {
		name string
		term Termination
		want bool
	}{
		{"terminated before as-of", Terminated(date(2021, time.June, 30)), true},
		{"terminated on as-of", Terminated(asOf), true},
		{"terminated after as-of", Terminated(date(2024, time.June, 1)), false},
		{"active never counts", Termination{Status: TermActive}, false},
		{"unknown never counts", Termination{Status: TermUnknown}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.TerminatedBy(asOf))
		})
	}
}

func TestTermStatus_RoundTrip(t *testing.T) {
	for _, s := range []TermStatus{TermActive, TermTerminated, TermUnknown} {
		assert.Equal(t, s, ParseTermStatus(s.String()))
	}
}

func TestRawEmployee_Validation(t *testing.T) {
	valid := RawEmployee{ID: "00-1234", Birthdate: "03/15/1990"}
	assert.NoError(t, valid.Validate())

	missing := RawEmployee{Birthdate: "03/15/1990"}
	assert.Error(t, missing.Validate())
}

func TestEmployee_AgeAt(t *testing.T) {
	birth := date(2000, time.June, 15)

	tests := []struct {
		name string
		asOf time.Time
		want int
	}{
		{"day before anniversary", date(2023, time.June, 14), 22},
		{"on anniversary", date(2023, time.June, 15), 23},
		{"day after anniversary", date(2023, time.June, 16), 23},
		{"earlier month", date(2023, time.March, 1), 22},
		{"later month", date(2023, time.September, 1), 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Employee{Birthdate: &birth}
			got := e.AgeAt(tt.asOf)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestEmployee_AgeAt_NilBirthdate(t *testing.T) {
	e := Employee{}
	assert.Nil(t, e.AgeAt(date(2024, time.January, 1)))
}

func TestEmployee_AgeAt_FutureBirthdate(t *testing.T) {
	birth := date(2030, time.January, 1)
	e := Employee{Birthdate: &birth}
	assert.Nil(t, e.AgeAt(date(2024, time.January, 1)))
}

func TestEmployee_JSONOmitsUnknownDates(t *testing.T) {
	e := Employee{ID: "00-1234", Gender: "Female"}
	data, err := json.Marshal(e)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "birthdate")
	assert.NotContains(t, string(data), "\"age\"")
	assert.Contains(t, string(data), "00-1234")
}
