package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jonathan/hr-analytics/internal/types"
)

// employeeColumns is the column order used for bulk loads and reads.
var employeeColumns = []string{
	"id", "first_name", "last_name", "birthdate", "gender", "race",
	"department", "jobtitle", "location", "hire_date", "termdate",
	"employment_status", "location_state", "age", "run_id",
}

// EmployeeFilter narrows ListEmployees. Zero values mean "no filter".
type EmployeeFilter struct {
	Department string
	State      string
	Status     string
	Limit      uint64
	Offset     uint64
}

// ReplaceEmployees replaces the whole employees table with the given cleaned
// snapshot in a single transaction. The table is the snapshot of exactly one
// cleaning run, so a full replace is the only write path.
func (db *DB) ReplaceEmployees(ctx context.Context, runID uuid.UUID, employees []types.Employee) (int64, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM employees`); err != nil {
		return 0, fmt.Errorf("failed to clear employees: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"employees"},
		employeeColumns,
		pgx.CopyFromSlice(len(employees), func(i int) ([]any, error) {
			row := rowFromEmployee(&employees[i], runID)
			return []any{
				row.ID, row.FirstName, row.LastName, row.Birthdate.Ptr(),
				row.Gender, row.Race, row.Department, row.JobTitle, row.Location,
				row.HireDate.Ptr(), row.Termdate.Ptr(), row.EmploymentStatus,
				row.LocationState, row.Age.Ptr(), row.RunID,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy employees: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit employees: %w", err)
	}

	db.logger.Info("replaced employee snapshot",
		zap.Int64("rows", copied),
		zap.String("run_id", runID.String()))
	return copied, nil
}

// LoadEmployees reads the entire cleaned snapshot.
func (db *DB) LoadEmployees(ctx context.Context) ([]types.Employee, error) {
	return db.ListEmployees(ctx, EmployeeFilter{})
}

// ListEmployees reads the cleaned snapshot with optional filters.
func (db *DB) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]types.Employee, error) {
	builder := sq.Select(employeeColumns...).
		From("employees").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if filter.Department != "" {
		builder = builder.Where(sq.Eq{"department": filter.Department})
	}
	if filter.State != "" {
		builder = builder.Where(sq.Eq{"location_state": filter.State})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"employment_status": filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build employees query: %w", err)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []types.Employee
	for rows.Next() {
		var row EmployeeRow
		if err := rows.Scan(
			&row.ID, &row.FirstName, &row.LastName, &row.Birthdate,
			&row.Gender, &row.Race, &row.Department, &row.JobTitle, &row.Location,
			&row.HireDate, &row.Termdate, &row.EmploymentStatus,
			&row.LocationState, &row.Age, &row.RunID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, row.Employee())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

// CountEmployees returns the snapshot size.
func (db *DB) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
