// Package main provides the entry point for the candidate platform server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kandidaten",
	Short: "Candidate resume presentation platform",
	Long:  "Accepts resume uploads, delegates parsing to an external service, stores candidate records and issues time-limited anonymized share links.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
