// Package types provides type definitions for structured data used throughout the skillgap engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"

	"github.com/go-playground/validator/v10"
)

// SkillType classifies a skill for weighting purposes.
type SkillType string

const (
	// SkillTypeTechnical marks hard skills (languages, tools, frameworks).
	SkillTypeTechnical SkillType = "technical"
	// SkillTypeSoft marks interpersonal and organizational skills.
	SkillTypeSoft SkillType = "soft"
)

// Difficulty grades how hard a skill is to pick up.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// SkillMention is a single raw skill hit handed over by an upstream extractor.
// SourceSpan is opaque extractor-specific location data and is carried through
// untouched.
type SkillMention struct {
	Text       string          `json:"text" validate:"required"`
	Type       SkillType       `json:"inferred_type,omitempty" validate:"omitempty,oneof=technical soft"`
	SourceSpan json.RawMessage `json:"source_span,omitempty"`
}

// CanonicalSkill is one entry of the canonical skill table.
type CanonicalSkill struct {
	ID            string     `json:"id" yaml:"id" validate:"required"`
	Type          SkillType  `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=technical soft"`
	Prerequisites []string   `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	DurationWeeks int        `json:"duration_weeks,omitempty" yaml:"duration_weeks,omitempty" validate:"gte=0"`
	Difficulty    Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

// RequiredSkill pairs a canonical skill id with its resolved type.
type RequiredSkill struct {
	Skill string    `json:"skill"`
	Type  SkillType `json:"type"`
}

// SkillSet maps canonical skill ids to their resolved type.
type SkillSet map[string]SkillType

// Add records a skill. Technical wins over any other type; an explicit type
// wins over an untyped contribution.
func (s SkillSet) Add(id string, t SkillType) {
	existing, ok := s[id]
	if !ok {
		s[id] = t
		return
	}
	if existing == SkillTypeTechnical {
		return
	}
	if t == SkillTypeTechnical || (existing == "" && t != "") {
		s[id] = t
	}
}

// Contains reports whether the set holds the given canonical id.
func (s SkillSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the canonical ids in lexicographic order.
func (s SkillSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate validates the SkillMention using the validator.
func (m *SkillMention) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// Validate validates the CanonicalSkill using the validator.
func (s *CanonicalSkill) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
