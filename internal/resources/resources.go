// Package resources resolves learning resources for skills, combining a
// curated catalog with optional live lookups.
package resources

import (
	"context"
	"sort"

	"github.com/priya/skillgap/internal/types"
)

// Resolver looks up learning resources for a skill. A maxResults of zero
// selects the implementation default; negative values are invalid. An
// unconfigured resolver returns no resources rather than an error.
type Resolver interface {
	Lookup(ctx context.Context, skill string, maxResults int) ([]types.Resource, error)
}

// Catalog holds curated resources keyed by canonical skill id.
type Catalog struct {
	entries map[string][]types.Resource
}

// NewCatalog builds a catalog from decoded entries. Resources without an
// explicit kind are stamped curated.
func NewCatalog(entries map[string][]types.Resource) *Catalog {
	out := make(map[string][]types.Resource, len(entries))
	for id, list := range entries {
		if id == "" || len(list) == 0 {
			continue
		}
		copied := make([]types.Resource, len(list))
		copy(copied, list)
		for i := range copied {
			if copied[i].Kind == "" {
				copied[i].Kind = types.ResourceKindCurated
			}
		}
		out[id] = copied
	}
	return &Catalog{entries: out}
}

// Lookup returns the curated resources for a skill, empty when none exist.
func (c *Catalog) Lookup(id string) []types.Resource {
	list, ok := c.entries[id]
	if !ok {
		return nil
	}
	out := make([]types.Resource, len(list))
	copy(out, list)
	return out
}

// Len returns the number of skills with curated resources.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// IDs returns the skill ids with curated resources in lexicographic order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
