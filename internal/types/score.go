// Package types provides type definitions for structured data used throughout the skillgap engine.
package types

// ScoreResult holds the weighted comparison of required versus possessed skills.
// Matching and Missing are sorted lexicographically by skill id.
type ScoreResult struct {
	AchievedScore    int             `json:"achieved_score"`
	MaxPossibleScore int             `json:"max_possible_score"`
	MatchPercentage  float64         `json:"match_percentage"`
	Summary          string          `json:"summary"`
	Matching         []RequiredSkill `json:"matching_skills"`
	Missing          []RequiredSkill `json:"missing_skills"`
}
