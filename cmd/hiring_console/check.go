package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-console/internal/observability"
	"github.com/jonathan/hiring-console/internal/schedule"
	"github.com/jonathan/hiring-console/internal/schemas"
	"github.com/jonathan/hiring-console/internal/scoring"
	"github.com/jonathan/hiring-console/internal/types"
)

var (
	checkAvailability string
	checkAutomation   string
	checkVerbose      bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate availability or automation JSON files offline",
	Long: `Validate exported availability or automation payloads without a running
server: schema structure first, then the same domain checks the API applies.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkAvailability, "availability", "", "Path to an availability payload JSON file")
	checkCmd.Flags().StringVar(&checkAutomation, "automation", "", "Path to an automation payload JSON file")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print formatted validation summaries")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	if checkAvailability == "" && checkAutomation == "" {
		return fmt.Errorf("at least one of --availability or --automation is required")
	}

	failed := false
	if checkAvailability != "" {
		if err := checkAvailabilityFile(checkAvailability); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", checkAvailability, err)
			failed = true
		}
	}
	if checkAutomation != "" {
		if err := checkAutomationFile(checkAutomation); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", checkAutomation, err)
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	fmt.Println("OK")
	return nil
}

func checkAvailabilityFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := schemas.ValidateAvailability(string(content)); err != nil {
		return err
	}

	var entries []types.AvailabilityEntry
	if err := json.Unmarshal(content, &entries); err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}

	weekly, dates, err := types.SchedulesFromEntries(entries)
	if err != nil {
		return err
	}

	weeklyResult := schedule.ValidateWeekly(weekly)
	dateResult := schedule.ValidateDates(dates)
	if checkVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScheduleResult("Weekly schedule", weeklyResult)
		printer.PrintScheduleResult("Date schedule", dateResult)
	} else {
		printResult("weekly schedule", weeklyResult)
		printResult("date schedule", dateResult)
	}

	if errorCount := len(weeklyResult.Errors) + len(dateResult.Errors); errorCount > 0 {
		return fmt.Errorf("schedule has %d error(s)", errorCount)
	}
	return nil
}

func checkAutomationFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := schemas.ValidateAutomation(string(content)); err != nil {
		return err
	}

	var automation types.Automation
	if err := json.Unmarshal(content, &automation); err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}

	if err := scoring.ValidateAutomation(&automation); err != nil {
		return err
	}

	if checkVerbose {
		observability.NewPrinter(os.Stdout).PrintAutomationSummary(&automation)
		return nil
	}
	for _, rule := range automation.JobRules {
		fmt.Printf("  rule: %s\n", scoring.PreviewText(rule))
	}
	return nil
}

func printResult(label string, result schedule.Result) {
	for _, msg := range result.Errors {
		fmt.Printf("  %s error: %s\n", label, msg)
	}
	for _, msg := range result.Warnings {
		fmt.Printf("  %s warning: %s\n", label, msg)
	}
}
