package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priya/skillgap/internal/config"
	"github.com/priya/skillgap/internal/observability"
	"github.com/priya/skillgap/internal/types"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a learning roadmap for named skills",
	Long:  "Builds a prerequisite-ordered learning roadmap for the named skills, with per-step duration, difficulty, cumulative timeline, and learning resources. Skills the candidate already has are skipped.",
	RunE:  runRoadmap,
}

var (
	roadmapSkills       []string
	roadmapCandidate    string
	roadmapOutput       string
	roadmapConfig       string
	roadmapCatalog      string
	roadmapResources    string
	roadmapAPIKey       string
	roadmapTimeout      int
	roadmapMaxResources int
	roadmapVerbose      bool
	roadmapJSONLogs     bool
	roadmapDebug        bool
)

func init() {
	roadmapCmd.Flags().StringSliceVarP(&roadmapSkills, "skill", "s", nil, "Skill to plan for, repeatable (required)")
	roadmapCmd.Flags().StringVarP(&roadmapCandidate, "candidate", "c", "", "Path to candidate skill mentions JSON file")
	roadmapCmd.Flags().StringVarP(&roadmapOutput, "out", "o", "", "Path to output roadmap JSON file (default: stdout)")
	roadmapCmd.Flags().StringVar(&roadmapConfig, "config", "", "Path to config JSON file")
	roadmapCmd.Flags().StringVar(&roadmapCatalog, "catalog", "", "Path to a skill catalog file (JSON or YAML)")
	roadmapCmd.Flags().StringVar(&roadmapResources, "resources", "", "Path to a curated resource catalog file (JSON or YAML)")
	roadmapCmd.Flags().StringVar(&roadmapAPIKey, "youtube-api-key", "", "YouTube Data API key (default: YOUTUBE_API_KEY env var)")
	roadmapCmd.Flags().IntVar(&roadmapTimeout, "timeout", 0, "Resource lookup timeout in seconds (default: 10)")
	roadmapCmd.Flags().IntVar(&roadmapMaxResources, "max-resources", 0, "Maximum resources per roadmap step (default: 3)")
	roadmapCmd.Flags().BoolVarP(&roadmapVerbose, "verbose", "v", false, "Print formatted summaries to stdout")
	roadmapCmd.Flags().BoolVar(&roadmapJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")
	roadmapCmd.Flags().BoolVar(&roadmapDebug, "debug", false, "Enable debug-level logging")

	if err := roadmapCmd.MarkFlagRequired("skill"); err != nil {
		panic(fmt.Sprintf("failed to mark skill flag as required: %v", err))
	}

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(roadmapConfig, config.Config{
		Catalog:              roadmapCatalog,
		Resources:            roadmapResources,
		YouTubeAPIKey:        roadmapAPIKey,
		LookupTimeoutSeconds: roadmapTimeout,
		MaxResources:         roadmapMaxResources,
		Verbose:              roadmapVerbose,
		JSONLogs:             roadmapJSONLogs,
		Debug:                roadmapDebug,
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	// 1. Load candidate mentions when provided
	var possessed []types.SkillMention
	if roadmapCandidate != "" {
		possessed, err = loadMentions(roadmapCandidate)
		if err != nil {
			return err
		}
	}

	// 2. Wire the analyzer
	analyzer, err := newAnalyzer(ctx, cfg, log)
	if err != nil {
		return err
	}

	// 3. Build the roadmap
	plan := analyzer.Roadmap(ctx, roadmapSkills, possessed)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRoadmap(plan)
	}

	// 4. Write the roadmap
	return writeJSON(roadmapOutput, plan)
}
