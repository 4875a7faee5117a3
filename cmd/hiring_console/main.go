// Package main provides the entry point for the hiring console HTTP API
// server and its offline tooling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hiring_console",
	Short: "Hiring Console HTTP API Server",
	Long:  "Hiring Console manages job postings, interview availability, screening questions, and applicant scoring automation via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
