package reports

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonathan/hr-analytics/internal/types"
)

// Report is one named aggregate read over the cleaned snapshot.
type Report struct {
	Name    string
	Title   string
	Compute func(employees []types.Employee, asOf time.Time) any
}

// registry holds every report in presentation order.
var registry = []Report{
	{"gender", "Gender Breakdown", func(e []types.Employee, a time.Time) any { return GenderBreakdown(e, a) }},
	{"race", "Race and Ethnicity Breakdown", func(e []types.Employee, a time.Time) any { return RaceBreakdown(e, a) }},
	{"age-distribution", "Age Distribution", func(e []types.Employee, a time.Time) any { return AgeDistributionReport(e, a) }},
	{"locations", "Location Breakdown", func(e []types.Employee, a time.Time) any { return LocationBreakdown(e, a) }},
	{"tenure", "Average Tenure (Terminated)", func(e []types.Employee, a time.Time) any { return AverageTenureTerminated(e, a) }},
	{"gender-by-department", "Gender by Department", func(e []types.Employee, a time.Time) any { return GenderByDepartment(e, a) }},
	{"job-titles", "Job Title Distribution", func(e []types.Employee, a time.Time) any { return JobTitleDistribution(e, a) }},
	{"turnover", "Turnover Rate by Department", func(e []types.Employee, a time.Time) any { return TurnoverByDepartment(e, a) }},
	{"states", "Geographic Distribution", func(e []types.Employee, a time.Time) any { return StateBreakdown(e, a) }},
	{"headcount-trend", "Headcount Trend by Hire Year", func(e []types.Employee, a time.Time) any { return HeadcountTrend(e, a) }},
	{"tenure-by-department", "Average Tenure by Department", func(e []types.Employee, a time.Time) any { return AverageTenureByDepartment(e, a) }},
}

// All returns every report in presentation order.
func All() []Report {
	out := make([]Report, len(registry))
	copy(out, registry)
	return out
}

// ByName looks up a single report.
func ByName(name string) (Report, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r, true
		}
	}
	return Report{}, false
}

// Names returns the registered report names in presentation order.
func Names() []string {
	names := make([]string, len(registry))
	for i, r := range registry {
		names[i] = r.Name
	}
	return names
}

// Tabulate renders a computed report result as a header row plus data rows,
// for text and spreadsheet output.
func Tabulate(result any) (headers []string, rows [][]string) {
	switch v := result.(type) {
	case []GroupCount:
		headers = []string{"Group", "Count"}
		for _, r := range v {
			rows = append(rows, []string{r.Group, strconv.Itoa(r.Count)})
		}
	case AgeDistribution:
		headers = []string{"Band", "Gender", "Count"}
		if v.Summary != nil {
			rows = append(rows, []string{
				fmt.Sprintf("min age %d / max age %d", v.Summary.MinAge, v.Summary.MaxAge), "", "",
			})
		}
		for _, b := range v.Bands {
			rows = append(rows, []string{b.Band, b.Gender, strconv.Itoa(b.Count)})
		}
	case *int:
		headers = []string{"Average Tenure (years)"}
		if v == nil {
			rows = append(rows, []string{"n/a"})
		} else {
			rows = append(rows, []string{strconv.Itoa(*v)})
		}
	case []DepartmentGenderCount:
		headers = []string{"Department", "Gender", "Count"}
		for _, r := range v {
			rows = append(rows, []string{r.Department, r.Gender, strconv.Itoa(r.Count)})
		}
	case []TurnoverRow:
		headers = []string{"Department", "Total", "Terminated", "Rate"}
		for _, r := range v {
			rate := "n/a"
			if r.Rate != nil {
				rate = fmt.Sprintf("%.4f", *r.Rate)
			}
			rows = append(rows, []string{r.Department, strconv.Itoa(r.Total), strconv.Itoa(r.Terminated), rate})
		}
	case []TrendRow:
		headers = []string{"Year", "Hires", "Terminations", "Net Change", "Net Change %"}
		for _, r := range v {
			pct := "n/a"
			if r.NetChangePct != nil {
				pct = fmt.Sprintf("%.2f", *r.NetChangePct)
			}
			rows = append(rows, []string{
				strconv.Itoa(r.Year), strconv.Itoa(r.Hires), strconv.Itoa(r.Terminations),
				strconv.Itoa(r.NetChange), pct,
			})
		}
	case []TenureRow:
		headers = []string{"Department", "Avg Tenure (years)", "Terminated"}
		for _, r := range v {
			rows = append(rows, []string{r.Department, fmt.Sprintf("%.1f", r.AvgYears), strconv.Itoa(r.Count)})
		}
	default:
		headers = []string{"Result"}
		rows = append(rows, []string{fmt.Sprintf("%v", result)})
	}
	return headers, rows
}
