package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/hr-analytics/internal/db"
	"github.com/jonathan/hr-analytics/internal/observability"
	"github.com/jonathan/hr-analytics/internal/pipeline"
	"github.com/jonathan/hr-analytics/internal/reports"
	"github.com/jonathan/hr-analytics/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute workforce reports from a CSV file or the database",
	Long: `Computes workforce composition, turnover and tenure reports over a
cleaned employee snapshot. The snapshot comes either from cleaning a raw CSV
in memory (--csv) or from the latest persisted run (--db-url).

By default every report is printed as a text table. Use --only to select
specific reports and --xlsx to write all selected reports to a workbook.`,
	RunE: runReport,
}

var (
	reportCSV         string
	reportDatabaseURL string
	reportAsOf        string
	reportOnly        []string
	reportXLSX        string
)

func init() {
	reportCmd.Flags().StringVar(&reportCSV, "csv", "", "Path to a raw employee CSV file (mutually exclusive with --db-url)")
	reportCmd.Flags().StringVar(&reportDatabaseURL, "db-url", "", "PostgreSQL connection URL (mutually exclusive with --csv)")
	reportCmd.Flags().StringVar(&reportAsOf, "as-of", "", "Reference date YYYY-MM-DD for tenure and turnover (defaults to today)")
	reportCmd.Flags().StringSliceVar(&reportOnly, "only", nil, fmt.Sprintf("Report names to compute (default all; one of: %v)", reports.Names()))
	reportCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "Write the reports to an Excel workbook at this path")

	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if reportCSV != "" && reportDatabaseURL != "" {
		return fmt.Errorf("--csv and --db-url are mutually exclusive; provide only one")
	}
	if reportCSV == "" && reportDatabaseURL == "" {
		reportDatabaseURL = os.Getenv("DATABASE_URL")
		if reportDatabaseURL == "" {
			return fmt.Errorf("either --csv or --db-url must be provided (or DATABASE_URL set)")
		}
	}

	asOf, err := parseAsOf(reportAsOf)
	if err != nil {
		return err
	}

	employees, err := loadSnapshot(ctx, asOf)
	if err != nil {
		return err
	}

	selected, err := selectReports(reportOnly)
	if err != nil {
		return err
	}

	if reportXLSX != "" {
		if err := reports.WriteWorkbook(reportXLSX, employees, asOf); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Printf("Workbook written to %s\n", reportXLSX)
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, r := range selected {
		headers, rows := reports.Tabulate(r.Compute(employees, asOf))
		printer.PrintTable(r.Title, headers, rows)
	}
	return nil
}

// loadSnapshot produces the cleaned employee set from whichever source was
// given: an in-memory cleaning run over the CSV, or the persisted snapshot.
func loadSnapshot(ctx context.Context, asOf time.Time) ([]types.Employee, error) {
	if reportCSV != "" {
		result, err := pipeline.Run(ctx, pipeline.RunOptions{
			SourcePath: reportCSV,
			AsOf:       asOf,
		})
		if err != nil {
			return nil, err
		}
		return result.Employees, nil
	}

	database, err := db.Connect(ctx, reportDatabaseURL, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	employees, err := database.LoadEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, fmt.Errorf("no employees in the database; run clean with --db-url first")
	}
	return employees, nil
}

// selectReports resolves --only names against the registry, keeping
// registry order. Nil means all reports.
func selectReports(names []string) ([]reports.Report, error) {
	if len(names) == 0 {
		return reports.All(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := reports.ByName(name); !ok {
			return nil, fmt.Errorf("unknown report %q (available: %v)", name, reports.Names())
		}
		wanted[name] = true
	}

	var selected []reports.Report
	for _, r := range reports.All() {
		if wanted[r.Name] {
			selected = append(selected, r)
		}
	}
	return selected, nil
}
