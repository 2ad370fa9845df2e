// Package reports implements the workforce composition reports as pure
// aggregate reads over a cleaned employee snapshot. Every function takes the
// snapshot and an as-of date and returns a freshly computed result; nothing
// here mutates the input.
package reports

import (
	"math"
	"sort"
	"time"

	"github.com/jonathan/hr-analytics/internal/types"
)

// GroupCount is one row of a single-dimension count report.
type GroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// AgeSummary holds the age range of the filtered workforce.
type AgeSummary struct {
	MinAge int `json:"min_age"`
	MaxAge int `json:"max_age"`
}

// AgeBandCount is one (age band, gender) cell of the age distribution.
type AgeBandCount struct {
	Band   string `json:"band"`
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

// AgeDistribution combines the age range with the banded breakdown.
type AgeDistribution struct {
	Summary *AgeSummary    `json:"summary"`
	Bands   []AgeBandCount `json:"bands"`
}

// DepartmentGenderCount is one (department, gender) cell.
type DepartmentGenderCount struct {
	Department string `json:"department"`
	Gender     string `json:"gender"`
	Count      int    `json:"count"`
}

// TurnoverRow is one department's turnover figures. Rate is nil when the
// department has no counted employees, never a division fault.
type TurnoverRow struct {
	Department string   `json:"department"`
	Total      int      `json:"total"`
	Terminated int      `json:"terminated"`
	Rate       *float64 `json:"rate"`
}

// TrendRow is one hire-year cohort of the headcount trend. NetChangePct is
// nil when the cohort has no hires.
type TrendRow struct {
	Year         int      `json:"year"`
	Hires        int      `json:"hires"`
	Terminations int      `json:"terminations"`
	NetChange    int      `json:"net_change"`
	NetChangePct *float64 `json:"net_change_pct"`
}

// TenureRow is one department's average tenure of terminated employees.
type TenureRow struct {
	Department string  `json:"department"`
	AvgYears   float64 `json:"avg_years"`
	Count      int     `json:"count"`
}

// ageBands are the reporting bands, in display order.
var ageBands = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

func ageBand(age int) string {
	switch {
	case age < 25:
		return "18-24"
	case age < 35:
		return "25-34"
	case age < 45:
		return "35-44"
	case age < 55:
		return "45-54"
	case age < 65:
		return "55-64"
	default:
		return "65+"
	}
}

func bandIndex(band string) int {
	for i, b := range ageBands {
		if b == band {
			return i
		}
	}
	return len(ageBands)
}

// countBy groups the filtered snapshot by a string key.
func countBy(employees []types.Employee, filter func(*types.Employee) bool, key func(*types.Employee) string) []GroupCount {
	counts := make(map[string]int)
	for i := range employees {
		if !filter(&employees[i]) {
			continue
		}
		counts[key(&employees[i])]++
	}

	rows := make([]GroupCount, 0, len(counts))
	for group, count := range counts {
		rows = append(rows, GroupCount{Group: group, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Group < rows[j].Group })
	return rows
}

func sortByCountDesc(rows []GroupCount) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Group < rows[j].Group
	})
}

// GenderBreakdown counts active adult employees by gender.
func GenderBreakdown(employees []types.Employee, _ time.Time) []GroupCount {
	return countBy(employees, activeAdult, func(e *types.Employee) string { return e.Gender })
}

// RaceBreakdown counts active adult employees by race, most common first.
func RaceBreakdown(employees []types.Employee, _ time.Time) []GroupCount {
	rows := countBy(employees, activeAdult, func(e *types.Employee) string { return e.Race })
	sortByCountDesc(rows)
	return rows
}

// AgeDistributionReport returns the age range and the (band, gender)
// breakdown of active adult employees. Summary is nil when no record passes
// the filter.
func AgeDistributionReport(employees []types.Employee, _ time.Time) AgeDistribution {
	var summary *AgeSummary
	counts := make(map[AgeBandCount]int)

	for i := range employees {
		e := &employees[i]
		if !activeAdult(e) {
			continue
		}
		age := *e.Age
		if summary == nil {
			summary = &AgeSummary{MinAge: age, MaxAge: age}
		} else {
			if age < summary.MinAge {
				summary.MinAge = age
			}
			if age > summary.MaxAge {
				summary.MaxAge = age
			}
		}
		counts[AgeBandCount{Band: ageBand(age), Gender: e.Gender}]++
	}

	bands := make([]AgeBandCount, 0, len(counts))
	for cell, count := range counts {
		cell.Count = count
		bands = append(bands, cell)
	}
	sort.Slice(bands, func(i, j int) bool {
		if bands[i].Band != bands[j].Band {
			return bandIndex(bands[i].Band) < bandIndex(bands[j].Band)
		}
		return bands[i].Gender < bands[j].Gender
	})

	return AgeDistribution{Summary: summary, Bands: bands}
}

// LocationBreakdown counts active adult employees by location (headquarters
// vs remote).
func LocationBreakdown(employees []types.Employee, _ time.Time) []GroupCount {
	return countBy(employees, activeAdult, func(e *types.Employee) string { return e.Location })
}

// AverageTenureTerminated returns the mean tenure in years of employees
// terminated on or before asOf, rounded to the nearest whole year. Returns
// nil when there are no such employees.
func AverageTenureTerminated(employees []types.Employee, asOf time.Time) *int {
	var total float64
	var n int
	for i := range employees {
		if years, ok := tenureYears(&employees[i], asOf); ok {
			total += years
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := int(math.Round(total / float64(n)))
	return &avg
}

// GenderByDepartment counts active adult employees by (department, gender).
func GenderByDepartment(employees []types.Employee, _ time.Time) []DepartmentGenderCount {
	counts := make(map[DepartmentGenderCount]int)
	for i := range employees {
		e := &employees[i]
		if !activeAdult(e) {
			continue
		}
		counts[DepartmentGenderCount{Department: e.Department, Gender: e.Gender}]++
	}

	rows := make([]DepartmentGenderCount, 0, len(counts))
	for cell, count := range counts {
		cell.Count = count
		rows = append(rows, cell)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Department != rows[j].Department {
			return rows[i].Department < rows[j].Department
		}
		return rows[i].Gender < rows[j].Gender
	})
	return rows
}

// JobTitleDistribution counts active adult employees by job title, least
// common first.
func JobTitleDistribution(employees []types.Employee, _ time.Time) []GroupCount {
	rows := countBy(employees, activeAdult, func(e *types.Employee) string { return e.JobTitle })
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count < rows[j].Count
		}
		return rows[i].Group < rows[j].Group
	})
	return rows
}

// TurnoverByDepartment computes terminated/total per department over adult
// employees, highest rate first. Terminations dated after asOf do not count;
// a department with zero counted employees reports a nil rate.
func TurnoverByDepartment(employees []types.Employee, asOf time.Time) []TurnoverRow {
	totals := make(map[string]int)
	terminated := make(map[string]int)

	for i := range employees {
		e := &employees[i]
		if !adult(e) {
			continue
		}
		totals[e.Department]++
		if e.Termination.TerminatedBy(asOf) {
			terminated[e.Department]++
		}
	}

	rows := make([]TurnoverRow, 0, len(totals))
	for dept, total := range totals {
		row := TurnoverRow{Department: dept, Total: total, Terminated: terminated[dept]}
		if total > 0 {
			rate := float64(row.Terminated) / float64(total)
			row.Rate = &rate
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		ri, rj := rows[i].Rate, rows[j].Rate
		switch {
		case ri == nil && rj == nil:
			return rows[i].Department < rows[j].Department
		case ri == nil:
			return false
		case rj == nil:
			return true
		case *ri != *rj:
			return *ri > *rj
		default:
			return rows[i].Department < rows[j].Department
		}
	})
	return rows
}

// StateBreakdown counts active adult employees by state, largest first.
func StateBreakdown(employees []types.Employee, _ time.Time) []GroupCount {
	rows := countBy(employees, activeAdult, func(e *types.Employee) string { return e.LocationState })
	sortByCountDesc(rows)
	return rows
}

// HeadcountTrend reports, per hire-year cohort of adult employees, the number
// hired, the number of those since terminated, and the net change. Records
// with no usable hire date are excluded.
func HeadcountTrend(employees []types.Employee, asOf time.Time) []TrendRow {
	hires := make(map[int]int)
	terms := make(map[int]int)

	for i := range employees {
		e := &employees[i]
		if !adult(e) || e.HireDate == nil {
			continue
		}
		year := e.HireDate.Year()
		hires[year]++
		if e.Termination.TerminatedBy(asOf) {
			terms[year]++
		}
	}

	rows := make([]TrendRow, 0, len(hires))
	for year, hired := range hires {
		row := TrendRow{
			Year:         year,
			Hires:        hired,
			Terminations: terms[year],
			NetChange:    hired - terms[year],
		}
		if hired > 0 {
			pct := float64(row.NetChange) / float64(hired) * 100
			row.NetChangePct = &pct
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

// AverageTenureByDepartment computes the mean tenure in years of terminated
// employees per department.
func AverageTenureByDepartment(employees []types.Employee, asOf time.Time) []TenureRow {
	totals := make(map[string]float64)
	counts := make(map[string]int)

	for i := range employees {
		e := &employees[i]
		years, ok := tenureYears(e, asOf)
		if !ok {
			continue
		}
		totals[e.Department] += years
		counts[e.Department]++
	}

	rows := make([]TenureRow, 0, len(totals))
	for dept, total := range totals {
		rows = append(rows, TenureRow{
			Department: dept,
			AvgYears:   total / float64(counts[dept]),
			Count:      counts[dept],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Department < rows[j].Department })
	return rows
}
