package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/hr-analytics/internal/pipeline"
)

func TestPrintSummary_ContainsCounts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(pipeline.Summary{
		TotalRows:          311,
		MissingBirthdates:  2,
		MissingHireDates:   1,
		MalformedTermdates: 3,
		MissingAges:        2,
		Active:             207,
		Terminated:         104,
		AsOf:               time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	out := buf.String()
	assert.Contains(t, out, "Cleaning Run Summary")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "Total rows:          311")
	assert.Contains(t, out, "Active:              207")
	assert.Contains(t, out, "Malformed termdates: 3")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintTable_AlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTable("Gender Breakdown", []string{"Group", "Count"}, [][]string{
		{"Female", "176"},
		{"Male", "135"},
	})

	out := buf.String()
	assert.Contains(t, out, "Gender Breakdown")
	assert.Contains(t, out, "Group   Count")
	assert.Contains(t, out, "Female  176")
	assert.Contains(t, out, "Male    135")
}

func TestPrintTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTable("States", []string{"Group", "Count"}, nil)

	assert.Contains(t, buf.String(), "(no rows)")
}
