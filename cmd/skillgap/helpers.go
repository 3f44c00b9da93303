package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/priya/skillgap/internal/catalog"
	"github.com/priya/skillgap/internal/config"
	"github.com/priya/skillgap/internal/logger"
	"github.com/priya/skillgap/internal/pipeline"
	"github.com/priya/skillgap/internal/resources"
	"github.com/priya/skillgap/internal/schemas"
	"github.com/priya/skillgap/internal/types"
	"github.com/priya/skillgap/internal/youtube"
)

// loadMentions reads a skill mention list from a JSON file, validating it
// against the mentions schema before decoding.
func loadMentions(path string) ([]types.SkillMention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mentions file %s: %w", path, err)
	}

	if err := schemas.ValidateMentions(data); err != nil {
		return nil, fmt.Errorf("invalid mentions file %s: %w", path, err)
	}

	var mentions []types.SkillMention
	if err := json.Unmarshal(data, &mentions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mentions JSON: %w", err)
	}

	for i := range mentions {
		if err := mentions[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid mention %d in %s: %w", i, path, err)
		}
	}

	return mentions, nil
}

// buildConfig layers CLI flag values over an optional config file, then
// falls back to the environment for the API key.
func buildConfig(configPath string, flagCfg config.Config) (config.Config, error) {
	merged := flagCfg
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = flagCfg.MergeWithDefaults(*fileCfg)
	}

	if merged.YouTubeAPIKey == "" {
		merged.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newLogger builds the CLI logger from the merged config.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// newAnalyzer wires the analyzer from the merged config: catalogs from files
// when configured, built-ins otherwise, and a cached YouTube resolver when
// an API key is present.
func newAnalyzer(ctx context.Context, cfg config.Config, log *zap.Logger) (*pipeline.Analyzer, error) {
	table := catalog.Default()
	if cfg.Catalog != "" {
		var err error
		table, err = catalog.LoadFile(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to load skill catalog: %w", err)
		}
	}

	curated := resources.Default()
	if cfg.Resources != "" {
		var err error
		curated, err = resources.LoadFile(cfg.Resources)
		if err != nil {
			return nil, fmt.Errorf("failed to load resource catalog: %w", err)
		}
	}

	var resolver resources.Resolver
	if cfg.YouTubeAPIKey != "" {
		client, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, log)
		if err != nil {
			return nil, err
		}
		resolver = resources.NewCached(client, cfg.CacheTTL())
	}

	return pipeline.NewAnalyzer(&pipeline.Options{
		Table:         table,
		Curated:       curated,
		Resolver:      resolver,
		Logger:        log,
		LookupTimeout: cfg.LookupTimeout(),
		MaxResources:  cfg.MaxResources,
	}), nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory when needed. An empty path prints to stdout instead.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
