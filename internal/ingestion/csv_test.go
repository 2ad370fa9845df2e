package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hr-analytics/internal/types"
)

const sampleCSV = `id,first_name,last_name,birthdate,gender,race,department,jobtitle,location,hire_date,termdate,location_state
00-1234,Ada,Smith,01/01/2000,Female,Asian,Engineering,Software Engineer,Headquarters,01-01-2020,,Ohio
00-5678,Ben,Jones,05/20/1985,Male,White,Sales,Account Executive,Remote,06/01/2010,2021-01-01 00:00:00 UTC,Michigan
`

func TestReadEmployeesFrom_Success(t *testing.T) {
	records, err := ReadEmployeesFrom(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "00-1234", records[0].ID)
	assert.Equal(t, "01/01/2000", records[0].Birthdate)
	assert.Equal(t, "01-01-2020", records[0].HireDate)
	assert.Empty(t, records[0].Termdate)
	assert.Equal(t, "Ohio", records[0].LocationState)

	assert.Equal(t, "2021-01-01 00:00:00 UTC", records[1].Termdate)
	assert.Equal(t, "Account Executive", records[1].JobTitle)
}

func TestReadEmployeesFrom_ValuesPassedThroughUntouched(t *testing.T) {
	// Whitespace and casing are the pipeline's problem, not the reader's.
	input := "id,birthdate,hire_date,termdate\n00-1," + `"  03/15/1990"` + ",03-15-2010,  \n"
	records, err := ReadEmployeesFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "  03/15/1990", records[0].Birthdate)
	assert.Equal(t, "  ", records[0].Termdate)
}

func TestReadEmployeesFrom_HeaderAliases(t *testing.T) {
	input := "employee_id,birth_date,hiredate,term_date,job_title,state\n00-1,01/01/2000,01/01/2020,,Analyst,Ohio\n"
	records, err := ReadEmployeesFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "00-1", records[0].ID)
	assert.Equal(t, "Analyst", records[0].JobTitle)
	assert.Equal(t, "Ohio", records[0].LocationState)
}

func TestReadEmployeesFrom_BOMHeader(t *testing.T) {
	input := "\ufeffid,birthdate,hire_date,termdate\n00-1,01/01/2000,01/01/2020,\n"
	records, err := ReadEmployeesFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "00-1", records[0].ID)
}

func TestReadEmployeesFrom_MissingRequiredColumn(t *testing.T) {
	input := "id,birthdate,hire_date\n00-1,01/01/2000,01/01/2020\n"
	_, err := ReadEmployeesFrom(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "termdate")
}

func TestReadEmployeesFrom_UnknownColumnsIgnored(t *testing.T) {
	input := "id,birthdate,hire_date,termdate,location_city\n00-1,01/01/2000,01/01/2020,,Cleveland\n"
	records, err := ReadEmployeesFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestReadEmployeesFrom_ShortRowPadded(t *testing.T) {
	input := "id,birthdate,hire_date,termdate\n00-1,01/01/2000\n"
	records, err := ReadEmployeesFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Termdate)
}

func TestReadEmployees_FileNotFound(t *testing.T) {
	_, err := ReadEmployees("/nonexistent/employees.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestReadEmployees_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	records, err := ReadEmployees(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestWriteCleaned_RoundTrip(t *testing.T) {
	birth := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	age := 24

	employees := []types.Employee{
		{
			ID: "00-1234", FirstName: "Ada", LastName: "Smith",
			Birthdate: &birth, HireDate: &hire,
			Termination: types.Termination{Status: types.TermActive},
			Age:         &age,
			Gender:      "Female", Race: "Asian", Department: "Engineering",
			JobTitle: "Software Engineer", Location: "Headquarters", LocationState: "Ohio",
		},
		{
			ID:          "00-5678",
			Termination: types.Terminated(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteCleaned(&sb, employees))
	out := sb.String()

	assert.Contains(t, out, "2000-01-01")
	assert.Contains(t, out, "0000-00-00")
	assert.Contains(t, out, "2021-01-01")
	assert.Contains(t, out, ",24")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,"))
}

func TestWriteCleanedCSV_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cleaned.csv")

	err := WriteCleanedCSV(path, []types.Employee{{ID: "00-1"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "00-1")
}
