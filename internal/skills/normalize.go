// Package skills normalizes raw skill mentions into canonical skill
// identities shared by the scoring and roadmap stages.
package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/priya/skillgap/internal/catalog"
	"github.com/priya/skillgap/internal/types"
)

// Spellings at most this many letters long are treated as acronyms when the
// catalog does not recognize them.
const acronymMaxLen = 4

// Normalizer maps raw skill spellings onto canonical catalog ids.
type Normalizer struct {
	table *catalog.Table
}

// NewNormalizer builds a Normalizer over the given table. A nil table selects
// the built-in catalog.
func NewNormalizer(table *catalog.Table) *Normalizer {
	if table == nil {
		table = catalog.Default()
	}
	return &Normalizer{table: table}
}

// CanonicalID resolves one raw spelling to a canonical skill id. The catalog
// alias table is consulted first; unrecognized spellings fall back to a
// cosmetic form, uppercased when they look like an acronym and title-cased
// otherwise. Spellings that are empty after trimming report ok=false.
func (n *Normalizer) CanonicalID(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	if id, ok := n.table.Canonical(trimmed); ok {
		return id, true
	}

	if utf8.RuneCountInString(trimmed) <= acronymMaxLen && isAlphabetic(trimmed) {
		return strings.ToUpper(trimmed), true
	}

	return titleCase(trimmed), true
}

// Normalize folds mentions into a canonical skill set, dropping blank
// mentions and merging duplicates.
func (n *Normalizer) Normalize(mentions []types.SkillMention) types.SkillSet {
	set := make(types.SkillSet, len(mentions))
	for _, mention := range mentions {
		id, ok := n.CanonicalID(mention.Text)
		if !ok {
			continue
		}
		set.Add(id, n.resolveType(id, mention.Type))
	}
	return set
}

// NormalizeOrdered is Normalize keeping first-occurrence order, for callers
// that accumulate scores in input order.
func (n *Normalizer) NormalizeOrdered(mentions []types.SkillMention) []types.RequiredSkill {
	set := make(types.SkillSet, len(mentions))
	order := make([]string, 0, len(mentions))

	for _, mention := range mentions {
		id, ok := n.CanonicalID(mention.Text)
		if !ok {
			continue
		}
		if !set.Contains(id) {
			order = append(order, id)
		}
		set.Add(id, n.resolveType(id, mention.Type))
	}

	out := make([]types.RequiredSkill, len(order))
	for i, id := range order {
		out[i] = types.RequiredSkill{Skill: id, Type: set[id]}
	}
	return out
}

// CanonicalIDs resolves plain skill names, deduplicating while keeping
// first-occurrence order.
func (n *Normalizer) CanonicalIDs(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		id, ok := n.CanonicalID(name)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolveType picks the type for a canonical id. The catalog is authoritative
// for known skills; otherwise the mention's own classification is trusted.
func (n *Normalizer) resolveType(id string, mentionType types.SkillType) types.SkillType {
	if skill, ok := n.table.Skill(id); ok {
		return skill.Type
	}
	return mentionType
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// titleCase builds a fresh Caser per call; cases.Caser carries state and is
// not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
