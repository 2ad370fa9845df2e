package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jonathan/hr-analytics/internal/types"
)

// cleanedHeader is the column order of the cleaned snapshot file.
var cleanedHeader = []string{
	"id", "first_name", "last_name", "birthdate", "gender", "race",
	"department", "jobtitle", "location", "hire_date", "termdate",
	"location_state", "age",
}

// WriteCleanedCSV writes the cleaned snapshot to path. Dates are rendered in
// the canonical YYYY-MM-DD form, an active employee's termdate as the
// 0000-00-00 sentinel, and unrepresentable values as empty cells.
func WriteCleanedCSV(path string, employees []types.Employee) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := WriteCleaned(f, employees); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteCleaned writes the cleaned snapshot to w.
func WriteCleaned(w io.Writer, employees []types.Employee) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(cleanedHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range employees {
		if err := cw.Write(employeeRow(&employees[i])); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", employees[i].ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func employeeRow(e *types.Employee) []string {
	birth := ""
	if e.Birthdate != nil {
		birth = e.Birthdate.Format(types.DateLayout)
	}
	hire := ""
	if e.HireDate != nil {
		hire = e.HireDate.Format(types.DateLayout)
	}
	age := ""
	if e.Age != nil {
		age = strconv.Itoa(*e.Age)
	}

	return []string{
		e.ID, e.FirstName, e.LastName, birth, e.Gender, e.Race,
		e.Department, e.JobTitle, e.Location, hire, e.Termination.String(),
		e.LocationState, age,
	}
}
