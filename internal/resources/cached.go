package resources

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/priya/skillgap/internal/types"
)

// DefaultCacheTTL bounds how long a lookup result is reused.
const DefaultCacheTTL = 24 * time.Hour

type cacheEntry struct {
	resources []types.Resource
	storedAt  time.Time
}

// Cached wraps a Resolver with an in-memory TTL memo. Failed lookups are not
// cached, so transient errors retry on the next call.
type Cached struct {
	inner Resolver
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCached wraps a resolver with a memo. A non-positive ttl selects
// DefaultCacheTTL.
func NewCached(inner Resolver, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Lookup returns memoized resources when a fresh entry exists, delegating to
// the wrapped resolver otherwise.
func (c *Cached) Lookup(ctx context.Context, skill string, maxResults int) ([]types.Resource, error) {
	key := fmt.Sprintf("%s|%d", strings.ToLower(skill), maxResults)

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()

	if ok && time.Since(entry.storedAt) < c.ttl {
		return cloneResources(entry.resources), nil
	}

	found, err := c.inner.Lookup(ctx, skill, maxResults)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{resources: cloneResources(found), storedAt: time.Now()}
	c.mu.Unlock()

	return found, nil
}

func cloneResources(list []types.Resource) []types.Resource {
	if list == nil {
		return nil
	}
	out := make([]types.Resource, len(list))
	copy(out, list)
	return out
}
