// Package catalog provides the canonical skill table: the alias vocabulary
// mapping raw skill spellings to canonical ids, plus per-skill prerequisites
// and learning timelines. A Table is immutable once constructed and safe for
// concurrent use.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/priya/skillgap/internal/types"
)

// Defaults applied when a skill has no timeline entry.
const (
	DefaultDurationWeeks = 4
	DefaultDifficulty    = types.DifficultyIntermediate
)

// Document is the on-disk catalog format, loadable from JSON or YAML.
type Document struct {
	Aliases map[string]string      `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Skills  []types.CanonicalSkill `json:"skills" yaml:"skills"`
}

// Table is the canonical skill table.
type Table struct {
	aliases map[string]string // lowercased spelling -> canonical id
	skills  map[string]types.CanonicalSkill
}

// New builds a Table from a decoded document. Every skill id aliases itself,
// so canonical spellings resolve without an explicit alias entry; explicit
// aliases override those identity mappings. Entries are validated and a skill
// listing itself as a direct prerequisite is rejected. Indirect prerequisite
// cycles are tolerated here; the roadmap builder handles them at ordering time.
func New(doc *Document) (*Table, error) {
	if doc == nil {
		return nil, fmt.Errorf("catalog document is nil")
	}

	skills := make(map[string]types.CanonicalSkill, len(doc.Skills))
	aliases := make(map[string]string, len(doc.Aliases)+len(doc.Skills))

	for i := range doc.Skills {
		skill := doc.Skills[i]
		if err := skill.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %q: %w", skill.ID, err)
		}
		for _, prereq := range skill.Prerequisites {
			if prereq == skill.ID {
				return nil, fmt.Errorf("skill %q lists itself as a prerequisite", skill.ID)
			}
		}
		if _, exists := skills[skill.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog entry %q", skill.ID)
		}
		skills[skill.ID] = skill
		aliases[strings.ToLower(skill.ID)] = skill.ID
	}

	for alias, id := range doc.Aliases {
		key := strings.ToLower(strings.TrimSpace(alias))
		if key == "" || id == "" {
			continue
		}
		aliases[key] = id
	}

	return &Table{aliases: aliases, skills: skills}, nil
}

// Canonical resolves a spelling to its canonical skill id. The lookup is
// case-insensitive.
func (t *Table) Canonical(spelling string) (string, bool) {
	id, ok := t.aliases[strings.ToLower(strings.TrimSpace(spelling))]
	return id, ok
}

// Skill returns the catalog entry for a canonical id.
func (t *Table) Skill(id string) (types.CanonicalSkill, bool) {
	skill, ok := t.skills[id]
	return skill, ok
}

// Prerequisites returns the direct prerequisites of a skill, empty when the
// skill is unknown.
func (t *Table) Prerequisites(id string) []string {
	skill, ok := t.skills[id]
	if !ok || len(skill.Prerequisites) == 0 {
		return nil
	}
	out := make([]string, len(skill.Prerequisites))
	copy(out, skill.Prerequisites)
	return out
}

// Timeline returns the learning duration and difficulty for a skill. Unknown
// skills and entries without timeline data get the default tuple; this never
// fails.
func (t *Table) Timeline(id string) (int, types.Difficulty) {
	skill, ok := t.skills[id]

	weeks := DefaultDurationWeeks
	if ok && skill.DurationWeeks > 0 {
		weeks = skill.DurationWeeks
	}

	difficulty := DefaultDifficulty
	if ok && skill.Difficulty != "" {
		difficulty = skill.Difficulty
	}

	return weeks, difficulty
}

// Len returns the number of catalog entries.
func (t *Table) Len() int {
	return len(t.skills)
}

// IDs returns all canonical skill ids in lexicographic order.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.skills))
	for id := range t.skills {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
