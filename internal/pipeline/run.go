// Package pipeline provides the high-level orchestration for the employee
// data cleaning process: ingest, date normalization, age derivation, and
// optional persistence of the cleaned snapshot.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hr-analytics/internal/db"
	"github.com/jonathan/hr-analytics/internal/ingestion"
	"github.com/jonathan/hr-analytics/internal/normalize"
	"github.com/jonathan/hr-analytics/internal/types"
)

// Step names used in progress events.
const (
	StepIngest    = "ingest"
	StepNormalize = "normalize_dates"
	StepDerive    = "derive_ages"
	StepPersist   = "persist"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	// SourcePath is the employee flat file to clean.
	SourcePath string `validate:"required"`
	// AsOf is the reference date for age derivation. Zero means today; the
	// value is recorded with the run because stored ages are a snapshot as of
	// this date, not a live view.
	AsOf time.Time
	// DatabaseURL enables persistence of the cleaned snapshot when set.
	DatabaseURL string
	// Workers bounds per-record parallelism inside each phase. Zero means
	// GOMAXPROCS.
	Workers    int
	Verbose    bool
	OnProgress ProgressCallback
}

// Summary holds the row-level outcome counts of a cleaning run.
type Summary struct {
	TotalRows          int       `json:"total_rows"`
	MissingBirthdates  int       `json:"missing_birthdates"`
	MissingHireDates   int       `json:"missing_hire_dates"`
	MalformedTermdates int       `json:"malformed_termdates"`
	MissingAges        int       `json:"missing_ages"`
	Active             int       `json:"active"`
	Terminated         int       `json:"terminated"`
	AsOf               time.Time `json:"as_of"`
}

// Result is the outcome of a pipeline run. RunID is uuid.Nil when no
// database was configured.
type Result struct {
	RunID     uuid.UUID
	Employees []types.Employee
	Summary   Summary
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run executes the full cleaning pipeline. The record set is treated as an
// immutable snapshot: each phase produces a new slice, and the column
// dependency order (birthdate/hire_date, then termdate, then age) is enforced
// as a whole-table barrier between phases. No row is ever dropped: every
// per-field failure resolves to a null or unknown outcome on that row.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := validator.New().Struct(&opts); err != nil {
		return nil, fmt.Errorf("invalid run options: %w", err)
	}
	if opts.AsOf.IsZero() {
		opts.AsOf = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	fmt.Printf("Step 1/4: Loading employee records from %s...\n", opts.SourcePath)
	raw, err := ingestion.ReadEmployees(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("ingestion failed: %w", err)
	}
	emitProgress(&opts, StepIngest, fmt.Sprintf("Loaded %d raw records", len(raw)))

	fmt.Printf("Step 2/4: Normalizing date fields...\n")
	employees, err := normalizeDates(ctx, raw, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("date normalization failed: %w", err)
	}
	emitProgress(&opts, StepNormalize, "Normalized birthdate, hire_date, and termdate columns")

	fmt.Printf("Step 3/4: Deriving ages as of %s...\n", opts.AsOf.Format(types.DateLayout))
	employees, err = deriveAges(ctx, employees, opts.AsOf, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("age derivation failed: %w", err)
	}
	emitProgress(&opts, StepDerive, "Derived snapshot ages")

	summary := tally(employees, opts.AsOf)
	result := &Result{Employees: employees, Summary: summary}

	if opts.DatabaseURL == "" {
		fmt.Printf("Step 4/4: No database configured; skipping persistence.\n")
		return result, nil
	}

	fmt.Printf("Step 4/4: Persisting cleaned snapshot...\n")
	runID, err := persist(ctx, opts, employees, summary)
	if err != nil {
		// Persistence trouble never invalidates the cleaned snapshot itself.
		fmt.Printf("Warning: failed to persist snapshot: %v\n", err)
		fmt.Printf("Continuing without database persistence...\n")
		return result, nil
	}
	result.RunID = runID
	emitProgress(&opts, StepPersist, fmt.Sprintf("Persisted %d records under run %s", len(employees), runID))

	return result, nil
}

// normalizeDates runs the Field Normalizer over the raw snapshot. Birthdate
// and hire_date are normalized first; the termdate phase only starts after
// that whole-table pass completes. Records are independent of each other, so
// each phase fans out per record.
func normalizeDates(ctx context.Context, raw []types.RawEmployee, workers int) ([]types.Employee, error) {
	out := make([]types.Employee, len(raw))

	// Phase one: pass-through fields plus birthdate and hire_date.
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range raw {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r := &raw[i]
			out[i] = types.Employee{
				ID:            r.ID,
				FirstName:     r.FirstName,
				LastName:      r.LastName,
				Gender:        r.Gender,
				Race:          r.Race,
				Department:    r.Department,
				JobTitle:      r.JobTitle,
				Location:      r.Location,
				LocationState: r.LocationState,
				Birthdate:     normalize.ParseDate(r.Birthdate),
				HireDate:      normalize.ParseDate(r.HireDate),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Phase two: termdate. A malformed value resolves to an unknown status on
	// that row; it is tallied later, not fatal.
	g, gCtx = errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range raw {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			term, _ := normalize.ParseTermdate(raw[i].Termdate)
			out[i].Termination = term
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// deriveAges runs the Age Deriver over the normalized snapshot. It requires
// the birthdate phase to have fully completed, which normalizeDates
// guarantees by returning only after its barrier.
func deriveAges(ctx context.Context, in []types.Employee, asOf time.Time, workers int) ([]types.Employee, error) {
	out := make([]types.Employee, len(in))
	copy(out, in)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range out {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[i].Age = normalize.DeriveAge(out[i].Birthdate, asOf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// tally computes the run summary from the cleaned snapshot.
func tally(employees []types.Employee, asOf time.Time) Summary {
	s := Summary{TotalRows: len(employees), AsOf: asOf}
	for i := range employees {
		e := &employees[i]
		if e.Birthdate == nil {
			s.MissingBirthdates++
		}
		if e.HireDate == nil {
			s.MissingHireDates++
		}
		if e.Age == nil {
			s.MissingAges++
		}
		switch e.Termination.Status {
		case types.TermActive:
			s.Active++
		case types.TermTerminated:
			s.Terminated++
		default:
			s.MalformedTermdates++
		}
	}
	return s
}

// persist stores the cleaned snapshot and its run record.
func persist(ctx context.Context, opts RunOptions, employees []types.Employee, summary Summary) (uuid.UUID, error) {
	database, err := db.Connect(ctx, opts.DatabaseURL, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer database.Close()

	runID, err := database.CreateRun(ctx, opts.SourcePath, opts.AsOf)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := database.ReplaceEmployees(ctx, runID, employees); err != nil {
		_ = database.CompleteRun(ctx, runID, "failed", db.RunStats{})
		return uuid.Nil, err
	}

	stats := db.RunStats{
		TotalRows:          summary.TotalRows,
		MissingBirthdates:  summary.MissingBirthdates,
		MissingHireDates:   summary.MissingHireDates,
		MalformedTermdates: summary.MalformedTermdates,
	}
	if err := database.CompleteRun(ctx, runID, "completed", stats); err != nil {
		return uuid.Nil, err
	}
	return runID, nil
}
