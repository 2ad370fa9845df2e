package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-analytics/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Read a raw employee CSV and report what it contains",
	Long: `Parses a raw HR employee export without cleaning it: resolves header
aliases, checks the required columns are present, and reports row counts and
per-row validation problems. Useful for checking a file before running clean.`,
	RunE: runIngest,
}

var (
	ingestCSV     string
	ingestVerbose bool
)

func init() {
	ingestCmd.Flags().StringVar(&ingestCSV, "csv", "", "Path to the raw employee CSV file")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print each invalid row")
	_ = ingestCmd.MarkFlagRequired("csv")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	raw, err := ingestion.ReadEmployees(ingestCSV)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	invalid := 0
	for i := range raw {
		if err := raw[i].Validate(); err != nil {
			invalid++
			if ingestVerbose {
				_, _ = fmt.Fprintf(os.Stdout, "row %d: %v\n", i+1, err)
			}
		}
	}

	fmt.Printf("Read %d rows from %s (%d invalid)\n", len(raw), ingestCSV, invalid)
	return nil
}
