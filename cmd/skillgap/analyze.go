package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priya/skillgap/internal/config"
	"github.com/priya/skillgap/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a candidate against a job and build a gap roadmap",
	Long:  "Normalizes the job's and the candidate's skill mentions, computes the weighted match score, and builds a prerequisite-ordered learning roadmap for the missing skills, producing a full report JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeJob          string
	analyzeCandidate    string
	analyzeOutput       string
	analyzeConfig       string
	analyzeCatalog      string
	analyzeResources    string
	analyzeAPIKey       string
	analyzeTimeout      int
	analyzeMaxResources int
	analyzeVerbose      bool
	analyzeJSONLogs     bool
	analyzeDebug        bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to required skill mentions JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeCandidate, "candidate", "c", "", "Path to candidate skill mentions JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output report JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to config JSON file")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "Path to a skill catalog file (JSON or YAML)")
	analyzeCmd.Flags().StringVar(&analyzeResources, "resources", "", "Path to a curated resource catalog file (JSON or YAML)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "youtube-api-key", "", "YouTube Data API key (default: YOUTUBE_API_KEY env var)")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 0, "Resource lookup timeout in seconds (default: 10)")
	analyzeCmd.Flags().IntVar(&analyzeMaxResources, "max-resources", 0, "Maximum resources per roadmap step (default: 3)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted summaries to stdout")
	analyzeCmd.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")
	analyzeCmd.Flags().BoolVar(&analyzeDebug, "debug", false, "Enable debug-level logging")

	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(analyzeConfig, config.Config{
		Catalog:              analyzeCatalog,
		Resources:            analyzeResources,
		YouTubeAPIKey:        analyzeAPIKey,
		LookupTimeoutSeconds: analyzeTimeout,
		MaxResources:         analyzeMaxResources,
		Verbose:              analyzeVerbose,
		JSONLogs:             analyzeJSONLogs,
		Debug:                analyzeDebug,
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	// 1. Load skill mentions
	required, err := loadMentions(analyzeJob)
	if err != nil {
		return err
	}
	possessed, err := loadMentions(analyzeCandidate)
	if err != nil {
		return err
	}

	// 2. Wire the analyzer
	analyzer, err := newAnalyzer(ctx, cfg, log)
	if err != nil {
		return err
	}

	// 3. Run the full analysis
	report := analyzer.Analyze(ctx, required, possessed)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRequirements(report.Required)
		printer.PrintScoreResult(report.Score)
		printer.PrintRoadmap(report.Roadmap)
	}

	// 4. Write the report
	return writeJSON(analyzeOutput, report)
}
