// Package types provides type definitions for structured data used throughout the skillgap engine.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Report is the full analysis envelope: normalized inputs, weighted score,
// and the learning roadmap for whatever is missing.
type Report struct {
	ID          uuid.UUID       `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Required    []RequiredSkill `json:"required_skills"`
	Possessed   []string        `json:"possessed_skills"`
	Score       *ScoreResult    `json:"score"`
	Roadmap     *Roadmap        `json:"roadmap"`
}
