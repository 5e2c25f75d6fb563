// Package main provides the entry point for the cover letter agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coverletter_agent",
	Short: "Quality-gated cover letter generator",
	Long:  "Generates German-language cover letters tailored to job postings, iterating until deterministic validation and an LLM quality judge are satisfied.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
