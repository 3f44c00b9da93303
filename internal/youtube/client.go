// Package youtube finds tutorial videos for skills via the YouTube Data API.
package youtube

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/priya/skillgap/internal/types"
)

// DefaultMaxResults is used when a caller passes zero.
const DefaultMaxResults = 3

const watchURLPrefix = "https://www.youtube.com/watch?v="

// Client searches YouTube for skill tutorials. A client built without an API
// key stays usable and resolves every lookup to no resources, so roadmap
// generation keeps working without credentials.
type Client struct {
	svc *youtube.Service
	log *zap.Logger
}

// NewClient creates a YouTube search client. An empty apiKey yields an
// unconfigured client rather than an error.
func NewClient(ctx context.Context, apiKey string, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if apiKey == "" {
		log.Warn("youtube api key not configured, external resource lookups disabled")
		return &Client{log: log}, nil
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	return &Client{svc: svc, log: log}, nil
}

// Configured reports whether the client has an API key behind it.
func (c *Client) Configured() bool {
	return c.svc != nil
}

// Lookup searches for beginner tutorial videos covering the skill. A zero
// maxResults selects DefaultMaxResults; negative values are rejected. An
// unconfigured client returns no resources and no error.
func (c *Client) Lookup(ctx context.Context, skill string, maxResults int) ([]types.Resource, error) {
	if maxResults < 0 {
		return nil, fmt.Errorf("max results must be non-negative, got %d", maxResults)
	}
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}
	if c.svc == nil {
		return nil, nil
	}

	query := fmt.Sprintf("%s tutorial for beginners", skill)
	resp, err := c.svc.Search.List([]string{"id", "snippet"}).
		Q(query).
		Type("video").
		RelevanceLanguage("en").
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed for %q: %w", skill, err)
	}

	found := make([]types.Resource, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		found = append(found, types.Resource{
			Title: item.Snippet.Title,
			URL:   watchURLPrefix + item.Id.VideoId,
			Kind:  types.ResourceKindExternal,
		})
	}

	c.log.Debug("youtube search completed",
		zap.String("skill", skill),
		zap.Int("results", len(found)))

	return found, nil
}
