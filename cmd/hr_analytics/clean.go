package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-analytics/internal/config"
	"github.com/jonathan/hr-analytics/internal/ingestion"
	"github.com/jonathan/hr-analytics/internal/observability"
	"github.com/jonathan/hr-analytics/internal/pipeline"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the full cleaning pipeline on a raw employee CSV",
	Long: `Ingests a raw HR employee export, normalizes birth, hire and termination
dates, derives ages, and optionally persists the cleaned snapshot to PostgreSQL
and writes it back out as CSV.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runClean,
}

var (
	cleanConfigPath  string
	cleanCSV         string
	cleanOutput      string
	cleanAsOf        string
	cleanWorkers     int
	cleanDatabaseURL string
	cleanVerbose     bool
)

func init() {
	cleanCmd.Flags().StringVar(&cleanConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cleanCmd.Flags().StringVar(&cleanCSV, "csv", "", "Path to the raw employee CSV file")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "Path for the cleaned CSV output (optional)")
	cleanCmd.Flags().StringVar(&cleanAsOf, "as-of", "", "Reference date YYYY-MM-DD for age and status (defaults to today)")
	cleanCmd.Flags().IntVar(&cleanWorkers, "workers", 0, "Worker count for the normalization stages (defaults to GOMAXPROCS)")
	cleanCmd.Flags().BoolVarP(&cleanVerbose, "verbose", "v", false, "Print detailed progress information")

	// Database URL for snapshot persistence
	cleanCmd.Flags().StringVar(&cleanDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if cleanConfigPath != "" {
		loadedCfg, err := config.LoadConfig(cleanConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if cleanVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", cleanConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("csv") {
		cfg.CSVPath = cleanCSV
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = cleanOutput
	}
	if cmd.Flags().Changed("as-of") {
		cfg.AsOf = cleanAsOf
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = cleanWorkers
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = cleanDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = cleanVerbose
	}

	// Step 3: Apply environment defaults for unset values
	cfg = cfg.MergeWithDefaults(config.FromEnv())

	// Step 4: Validate required fields
	if cfg.CSVPath == "" {
		return fmt.Errorf("--csv is required (via flag or config)")
	}

	asOf, err := parseAsOf(cfg.AsOf)
	if err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		SourcePath:  cfg.CSVPath,
		AsOf:        asOf,
		DatabaseURL: cfg.DatabaseURL,
		Workers:     cfg.Workers,
		Verbose:     cfg.Verbose,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
		}
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := ingestion.WriteCleanedCSV(cfg.Output, result.Employees); err != nil {
			return fmt.Errorf("failed to write cleaned CSV: %w", err)
		}
		fmt.Printf("Cleaned CSV written to %s\n", cfg.Output)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSummary(result.Summary)
	return nil
}
