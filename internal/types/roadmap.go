// Package types provides type definitions for structured data used throughout the skillgap engine.
package types

// ResourceKind distinguishes curated catalog entries from live lookups.
type ResourceKind string

const (
	// ResourceKindCurated marks resources from the local curated catalog.
	ResourceKindCurated ResourceKind = "curated"
	// ResourceKindExternal marks resources found through an external resolver.
	ResourceKindExternal ResourceKind = "external"
)

// Resource is a single learning resource attached to a roadmap step.
type Resource struct {
	Title string       `json:"title" yaml:"title"`
	URL   string       `json:"url" yaml:"url"`
	Kind  ResourceKind `json:"kind" yaml:"kind,omitempty"`
}

// RoadmapStep is one skill in the learning plan, in prerequisite order.
type RoadmapStep struct {
	Order           int        `json:"order"`
	Skill           string     `json:"skill"`
	DurationWeeks   int        `json:"duration_weeks"`
	Difficulty      Difficulty `json:"difficulty"`
	CumulativeWeeks int        `json:"cumulative_weeks"`
	Resources       []Resource `json:"resources"`
}

// Roadmap is the ordered learning plan for a set of missing skills.
// FallbackOrdering is set when prerequisite ordering did not converge and the
// skills listed in Unordered were appended in their working-set order.
type Roadmap struct {
	Steps            []RoadmapStep `json:"steps"`
	TotalWeeks       int           `json:"total_weeks"`
	FallbackOrdering bool          `json:"fallback_ordering,omitempty"`
	Unordered        []string      `json:"unordered_skills,omitempty"`
}
