// Package roadmap turns missing skills into an ordered learning plan with
// time estimates and learning resources.
package roadmap

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/priya/skillgap/internal/catalog"
	"github.com/priya/skillgap/internal/resources"
	"github.com/priya/skillgap/internal/types"
)

// DefaultLookupTimeout bounds a single external resource lookup.
const DefaultLookupTimeout = 10 * time.Second

// DefaultMaxResources is the number of resources attached per step.
const DefaultMaxResources = 3

// orderingSlack pads the round bound past the working-set size. Ordering an
// acyclic set converges well within it; the slack only delays the cycle
// fallback, it never changes the result.
const orderingSlack = 5

// Options configures roadmap building.
type Options struct {
	Curated       *resources.Catalog
	Resolver      resources.Resolver
	Logger        *zap.Logger
	LookupTimeout time.Duration
	MaxResources  int
}

// DefaultOptions returns sensible defaults: the built-in curated catalog and
// no external resolver.
func DefaultOptions() *Options {
	return &Options{
		Curated:       resources.Default(),
		LookupTimeout: DefaultLookupTimeout,
		MaxResources:  DefaultMaxResources,
	}
}

// Builder assembles learning roadmaps. It holds no state between calls; each
// Build is a pure function of its inputs, the skill table, and whatever the
// resolver currently answers.
type Builder struct {
	table         *catalog.Table
	curated       *resources.Catalog
	resolver      resources.Resolver
	log           *zap.Logger
	lookupTimeout time.Duration
	maxResources  int
}

// NewBuilder creates a Builder over the given skill table. A nil table
// selects the built-in catalog; a nil opts selects DefaultOptions.
func NewBuilder(table *catalog.Table, opts *Options) *Builder {
	if table == nil {
		table = catalog.Default()
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	curated := opts.Curated
	if curated == nil {
		curated = resources.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lookupTimeout := opts.LookupTimeout
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	maxResources := opts.MaxResources
	if maxResources <= 0 {
		maxResources = DefaultMaxResources
	}

	return &Builder{
		table:         table,
		curated:       curated,
		resolver:      opts.Resolver,
		log:           log,
		lookupTimeout: lookupTimeout,
		maxResources:  maxResources,
	}
}

// Build assembles a roadmap covering the missing skills and every
// prerequisite needed to reach them. Build is total: dependency cycles,
// unknown skills, and failing resource lookups all degrade rather than fail.
func (b *Builder) Build(ctx context.Context, missing []string, possessed types.SkillSet) *types.Roadmap {
	queue := b.expand(missing, possessed)
	ordered, unordered := b.order(queue, possessed)
	return b.enrich(ctx, ordered, unordered)
}

// expand closes the missing set over prerequisites. Skills already possessed
// are never scheduled. The result keeps insertion order: requested skills
// first, then discovered prerequisites in discovery order.
func (b *Builder) expand(missing []string, possessed types.SkillSet) []string {
	queue := make([]string, 0, len(missing))
	seen := make(map[string]struct{}, len(missing))

	add := func(id string) {
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		if possessed.Contains(id) {
			return
		}
		seen[id] = struct{}{}
		queue = append(queue, id)
	}

	for _, id := range missing {
		add(id)
	}
	for i := 0; i < len(queue); i++ {
		for _, prereq := range b.table.Prerequisites(queue[i]) {
			add(prereq)
		}
	}
	return queue
}

// order sorts the working set so prerequisites come before the skills that
// need them. Skills are placed in rounds; a round that places nothing means
// a dependency cycle, and the remaining skills are surfaced as unordered
// rather than dropped.
func (b *Builder) order(queue []string, possessed types.SkillSet) (ordered, unordered []string) {
	ordered = make([]string, 0, len(queue))
	placed := make(map[string]struct{}, len(queue))
	remaining := queue

	ready := func(id string) bool {
		for _, prereq := range b.table.Prerequisites(id) {
			if possessed.Contains(prereq) {
				continue
			}
			if _, ok := placed[prereq]; ok {
				continue
			}
			return false
		}
		return true
	}

	maxRounds := len(queue) + orderingSlack
	for round := 0; round < maxRounds && len(remaining) > 0; round++ {
		progressed := false
		next := remaining[:0]
		for _, id := range remaining {
			if ready(id) {
				ordered = append(ordered, id)
				placed[id] = struct{}{}
				progressed = true
			} else {
				next = append(next, id)
			}
		}
		remaining = next
		if !progressed {
			break
		}
	}

	if len(remaining) > 0 {
		unordered = append([]string(nil), remaining...)
		b.log.Warn("prerequisite ordering did not converge, appending remaining skills unordered",
			zap.Strings("skills", unordered))
	}
	return ordered, unordered
}

// enrich attaches timelines and resources to the final order. Resource
// lookups run concurrently; cumulative weeks are summed afterwards in step
// order.
func (b *Builder) enrich(ctx context.Context, ordered, unordered []string) *types.Roadmap {
	all := make([]string, 0, len(ordered)+len(unordered))
	all = append(all, ordered...)
	all = append(all, unordered...)

	steps := make([]types.RoadmapStep, len(all))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range all {
		g.Go(func() error {
			steps[i] = b.buildStep(gctx, i, id)
			return nil
		})
	}
	_ = g.Wait() // lookups degrade to empty resources, never fail

	total := 0
	for i := range steps {
		total += steps[i].DurationWeeks
		steps[i].CumulativeWeeks = total
	}

	return &types.Roadmap{
		Steps:            steps,
		TotalWeeks:       total,
		FallbackOrdering: len(unordered) > 0,
		Unordered:        unordered,
	}
}

func (b *Builder) buildStep(ctx context.Context, index int, id string) types.RoadmapStep {
	weeks, difficulty := b.table.Timeline(id)
	return types.RoadmapStep{
		Order:         index + 1,
		Skill:         id,
		DurationWeeks: weeks,
		Difficulty:    difficulty,
		Resources:     b.resolveResources(ctx, id),
	}
}

// resolveResources prefers the curated catalog and falls back to the
// external resolver. Every failure path yields an empty list.
func (b *Builder) resolveResources(ctx context.Context, id string) []types.Resource {
	if curated := b.curated.Lookup(id); len(curated) > 0 {
		return truncate(curated, b.maxResources)
	}

	if b.resolver == nil {
		return []types.Resource{}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, b.lookupTimeout)
	defer cancel()

	found, err := b.resolver.Lookup(lookupCtx, id, b.maxResources)
	if err != nil {
		b.log.Debug("resource lookup failed",
			zap.String("skill", id),
			zap.Error(err))
		return []types.Resource{}
	}
	if len(found) == 0 {
		return []types.Resource{}
	}
	return truncate(found, b.maxResources)
}

func truncate(list []types.Resource, limit int) []types.Resource {
	if len(list) <= limit {
		return list
	}
	return list[:limit]
}
