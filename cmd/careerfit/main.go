// Package main provides the careerfit command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerfit",
	Short: "Semantic matching and fit-scoring engine",
	Long:  "careerfit matches activities and job postings to target roles via vector search and scores user fit with deterministic weighted heuristics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
