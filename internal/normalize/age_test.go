package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func TestDeriveAge_AnniversaryBoundary(t *testing.T) {
	birth := mustDate(t, "2000-06-15")

	tests := []struct {
		name string
		asOf string
		want int
	}{
		{"one day short of anniversary", "2023-06-14", 22},
		{"on anniversary", "2023-06-15", 23},
		{"one day past anniversary", "2023-06-16", 23},
		{"start of birth year month", "2023-06-01", 22},
		{"end of year", "2023-12-31", 23},
		{"january before birthday", "2023-01-01", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAge(birth, *mustDate(t, tt.asOf))
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDeriveAge_NilBirthdate(t *testing.T) {
	assert.Nil(t, DeriveAge(nil, *mustDate(t, "2024-01-01")))
}

func TestDeriveAge_FutureBirthdate(t *testing.T) {
	assert.Nil(t, DeriveAge(mustDate(t, "2030-05-01"), *mustDate(t, "2024-01-01")))
}

func TestDeriveAge_BornOnAsOfDate(t *testing.T) {
	got := DeriveAge(mustDate(t, "2024-01-01"), *mustDate(t, "2024-01-01"))
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}

func TestDeriveAge_Idempotent(t *testing.T) {
	birth := mustDate(t, "1985-05-20")
	asOf := *mustDate(t, "2024-01-01")

	first := DeriveAge(birth, asOf)
	second := DeriveAge(birth, asOf)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.Equal(t, 38, *first)
}
