package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priya/skillgap/internal/config"
	"github.com/priya/skillgap/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the weighted skill match without a roadmap",
	Long:  "Normalizes the job's and the candidate's skill mentions and computes the weighted match score, producing a ScoreResult JSON. Technical skills weigh more than soft skills.",
	RunE:  runScore,
}

var (
	scoreJob       string
	scoreCandidate string
	scoreOutput    string
	scoreConfig    string
	scoreCatalog   string
	scoreVerbose   bool
	scoreJSONLogs  bool
	scoreDebug     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to required skill mentions JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to candidate skill mentions JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output score JSON file (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to config JSON file")
	scoreCmd.Flags().StringVar(&scoreCatalog, "catalog", "", "Path to a skill catalog file (JSON or YAML)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted summaries to stdout")
	scoreCmd.Flags().BoolVar(&scoreJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Enable debug-level logging")

	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(scoreConfig, config.Config{
		Catalog:  scoreCatalog,
		Verbose:  scoreVerbose,
		JSONLogs: scoreJSONLogs,
		Debug:    scoreDebug,
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	// 1. Load skill mentions
	required, err := loadMentions(scoreJob)
	if err != nil {
		return err
	}
	possessed, err := loadMentions(scoreCandidate)
	if err != nil {
		return err
	}

	// 2. Wire the analyzer; scoring needs no resolver
	cfg.YouTubeAPIKey = ""
	analyzer, err := newAnalyzer(ctx, cfg, log)
	if err != nil {
		return err
	}

	// 3. Score the match
	result := analyzer.Score(required, possessed)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintScoreResult(result)
	}

	// 4. Write the score
	return writeJSON(scoreOutput, result)
}
