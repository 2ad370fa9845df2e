// Package main provides the entry point for the HR analytics CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hr_analytics",
	Short: "HR workforce analytics toolkit",
	Long:  "hr_analytics cleans raw HR employee exports, derives ages and employment status, and produces workforce composition and turnover reports.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
