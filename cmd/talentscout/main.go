// Package main provides the entry point for the TalentScout scoring and
// ranking service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentscout",
	Short: "Candidate scoring and ranking service",
	Long:  "TalentScout scores and ranks sourced candidates against recruiter queries and analyzes interview transcripts into tiered campaign rankings, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
