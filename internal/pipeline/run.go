// Package pipeline provides the high-level orchestration for skill gap
// analysis: normalization, scoring, and roadmap building.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/priya/skillgap/internal/catalog"
	"github.com/priya/skillgap/internal/resources"
	"github.com/priya/skillgap/internal/roadmap"
	"github.com/priya/skillgap/internal/scoring"
	"github.com/priya/skillgap/internal/skills"
	"github.com/priya/skillgap/internal/types"
)

// Options holds the collaborators and tuning knobs for an Analyzer.
type Options struct {
	Table         *catalog.Table
	Curated       *resources.Catalog
	Resolver      resources.Resolver
	Logger        *zap.Logger
	LookupTimeout time.Duration
	MaxResources  int
}

// Analyzer runs gap analysis end to end. All collaborators are fixed at
// construction; the zero set of options selects the built-in catalogs, a nop
// logger, and no external resolver.
type Analyzer struct {
	table   *catalog.Table
	norm    *skills.Normalizer
	builder *roadmap.Builder
	log     *zap.Logger
}

// NewAnalyzer wires an Analyzer from options.
func NewAnalyzer(opts *Options) *Analyzer {
	if opts == nil {
		opts = &Options{}
	}

	table := opts.Table
	if table == nil {
		table = catalog.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	builder := roadmap.NewBuilder(table, &roadmap.Options{
		Curated:       opts.Curated,
		Resolver:      opts.Resolver,
		Logger:        log,
		LookupTimeout: opts.LookupTimeout,
		MaxResources:  opts.MaxResources,
	})

	return &Analyzer{
		table:   table,
		norm:    skills.NewNormalizer(table),
		builder: builder,
		log:     log,
	}
}

// Analyze normalizes both mention lists, scores the match, and builds a
// roadmap covering the missing skills and their prerequisites.
func (a *Analyzer) Analyze(ctx context.Context, required, possessed []types.SkillMention) *types.Report {
	requiredSkills := a.norm.NormalizeOrdered(required)
	possessedSet := a.norm.Normalize(possessed)

	a.log.Info("normalized skill mentions",
		zap.Int("required", len(requiredSkills)),
		zap.Int("possessed", len(possessedSet)))

	score := scoring.Score(requiredSkills, possessedSet)

	a.log.Info("scored skill match",
		zap.Float64("match_percentage", score.MatchPercentage),
		zap.Int("matching", len(score.Matching)),
		zap.Int("missing", len(score.Missing)))

	missing := make([]string, len(score.Missing))
	for i, skill := range score.Missing {
		missing[i] = skill.Skill
	}
	plan := a.builder.Build(ctx, missing, possessedSet)

	a.log.Info("built learning roadmap",
		zap.Int("steps", len(plan.Steps)),
		zap.Int("total_weeks", plan.TotalWeeks),
		zap.Bool("fallback_ordering", plan.FallbackOrdering))

	return &types.Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Required:    requiredSkills,
		Possessed:   possessedSet.IDs(),
		Score:       score,
		Roadmap:     plan,
	}
}

// Score normalizes both mention lists and scores the match without building
// a roadmap.
func (a *Analyzer) Score(required, possessed []types.SkillMention) *types.ScoreResult {
	return scoring.Score(a.norm.NormalizeOrdered(required), a.norm.Normalize(possessed))
}

// Roadmap builds a learning plan for explicitly named skills. Possessed
// mentions are normalized first so already-held skills and their
// prerequisites drop out of the plan.
func (a *Analyzer) Roadmap(ctx context.Context, skillNames []string, possessed []types.SkillMention) *types.Roadmap {
	return a.builder.Build(ctx, a.norm.CanonicalIDs(skillNames), a.norm.Normalize(possessed))
}
