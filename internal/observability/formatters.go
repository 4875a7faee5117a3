// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hiring-console/internal/schedule"
	"github.com/jonathan/hiring-console/internal/scoring"
	"github.com/jonathan/hiring-console/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScheduleResult prints a schedule validation result with its errors
// and warnings.
func (p *Printer) PrintScheduleResult(label string, result schedule.Result) {
	var sb strings.Builder
	if result.IsValid {
		sb.WriteString("valid\n")
	} else {
		sb.WriteString(fmt.Sprintf("%d error(s)\n", len(result.Errors)))
	}
	for _, msg := range result.Errors {
		sb.WriteString("error: " + msg + "\n")
	}
	for _, msg := range result.Warnings {
		sb.WriteString("warning: " + msg + "\n")
	}
	p.printBox(label, strings.TrimRight(sb.String(), "\n"))
}

// PrintAutomationSummary prints the configured weights, thresholds, and rule
// previews of an automation payload.
func (p *Printer) PrintAutomationSummary(automation *types.Automation) {
	if automation == nil {
		p.printBox("Automation", "not configured")
		return
	}

	var sb strings.Builder
	for _, section := range types.Sections() {
		weight, ok := automation.SectionWeights[section]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: weight %d", section, weight))
		if threshold, ok := automation.SectionThresholds[section]; ok {
			sb.WriteString(fmt.Sprintf(" (reject <%d, review <%d)", threshold.AutoReject, threshold.ManualReview))
		}
		sb.WriteString("\n")
	}
	for _, rule := range automation.JobRules {
		sb.WriteString(scoring.PreviewText(rule) + "\n")
	}
	if sb.Len() == 0 {
		sb.WriteString("empty")
	}
	p.printBox("Automation", strings.TrimRight(sb.String(), "\n"))
}
