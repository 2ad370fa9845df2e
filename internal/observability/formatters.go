// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hr-analytics/internal/pipeline"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs a human-readable summary of a cleaning run.
func (p *Printer) PrintSummary(summary pipeline.Summary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("As of:               %s\n", summary.AsOf.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Total rows:          %d\n", summary.TotalRows))
	sb.WriteString(fmt.Sprintf("Active:              %d\n", summary.Active))
	sb.WriteString(fmt.Sprintf("Terminated:          %d\n", summary.Terminated))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Missing birthdates:  %d\n", summary.MissingBirthdates))
	sb.WriteString(fmt.Sprintf("Missing hire dates:  %d\n", summary.MissingHireDates))
	sb.WriteString(fmt.Sprintf("Malformed termdates: %d\n", summary.MalformedTermdates))
	sb.WriteString(fmt.Sprintf("Missing ages:        %d", summary.MissingAges))

	p.printBox("Cleaning Run Summary", sb.String())
}

// PrintTable outputs a report as an aligned text table under a title rule.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTable(title string, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmt.Fprintf(p.out, "\n%s\n%s\n", title, strings.Repeat("─", len(title)))
	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i < len(widths) {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			} else {
				parts[i] = cell
			}
		}
		fmt.Fprintf(p.out, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	for _, row := range rows {
		printRow(row)
	}
	if len(rows) == 0 {
		fmt.Fprintf(p.out, "  (no rows)\n")
	}
}
