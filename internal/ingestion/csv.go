// Package ingestion reads the employee flat file into raw records and writes
// the cleaned snapshot back out. Values are passed through untouched; every
// interpretation decision belongs to the normalization pipeline.
package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/hr-analytics/internal/types"
)

// columnAliases maps accepted header spellings to canonical column names.
var columnAliases = map[string]string{
	"id":             "id",
	"employee_id":    "id",
	"emp_id":         "id",
	"first_name":     "first_name",
	"last_name":      "last_name",
	"birthdate":      "birthdate",
	"birth_date":     "birthdate",
	"gender":         "gender",
	"race":           "race",
	"race_ethnicity": "race",
	"ethnicity":      "race",
	"department":     "department",
	"jobtitle":       "jobtitle",
	"job_title":      "jobtitle",
	"location":       "location",
	"hire_date":      "hire_date",
	"hiredate":       "hire_date",
	"termdate":       "termdate",
	"term_date":      "termdate",
	"location_state": "location_state",
	"state":          "location_state",
}

// requiredColumns must all be present in the header row.
var requiredColumns = []string{"id", "birthdate", "hire_date", "termdate"}

// ReadEmployees reads the flat file at path into raw records.
func ReadEmployees(path string) ([]types.RawEmployee, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	records, err := ReadEmployeesFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// ReadEmployeesFrom reads raw records from a delimited text stream with one
// header row. Unknown columns are ignored; a missing required column is an
// error. Rows shorter than the header are padded with empty values rather
// than rejected, so a single ragged row never aborts the batch.
func ReadEmployeesFrom(r io.Reader) ([]types.RawEmployee, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var records []types.RawEmployee
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+2, err)
		}
		records = append(records, rowToRecord(row, columns))
	}
	return records, nil
}

// mapHeader resolves the header row to canonical column positions.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		// A UTF-8 BOM on the first cell is common in exported files.
		name = strings.TrimPrefix(name, "\ufeff")
		if canonical, ok := columnAliases[name]; ok {
			columns[canonical] = i
		}
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q in header", required)
		}
	}
	return columns, nil
}

func rowToRecord(row []string, columns map[string]int) types.RawEmployee {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	return types.RawEmployee{
		ID:            cell("id"),
		FirstName:     cell("first_name"),
		LastName:      cell("last_name"),
		Birthdate:     cell("birthdate"),
		Gender:        cell("gender"),
		Race:          cell("race"),
		Department:    cell("department"),
		JobTitle:      cell("jobtitle"),
		Location:      cell("location"),
		HireDate:      cell("hire_date"),
		Termdate:      cell("termdate"),
		LocationState: cell("location_state"),
	}
}
