// Package main provides the skillgap CLI for skill gap analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgap",
	Short: "Skill gap analysis between candidates and job requirements",
	Long:  "skillgap normalizes noisy skill mentions into a canonical vocabulary, scores how well a candidate covers a job's weighted skill requirements, and builds a prerequisite-ordered learning roadmap for the gaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
