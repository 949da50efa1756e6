package catalog

import "context"

// GetEvents returns every boutique event.
func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	return findMany[Event](ctx, c, map[string]any{"type": "events"}, defaultProps, "fetch events")
}

// GetEvent looks an event up by slug; nil when absent.
func (c *Client) GetEvent(ctx context.Context, slug string) (*Event, error) {
	return findOne[Event](ctx, c, map[string]any{"type": "events", "slug": slug}, defaultProps, "fetch event")
}

// GetFeaturedEvents returns events flagged as featured.
func (c *Client) GetFeaturedEvents(ctx context.Context) ([]Event, error) {
	query := map[string]any{
		"type":                    "events",
		"metadata.featured_event": true,
	}
	return findMany[Event](ctx, c, query, defaultProps, "fetch featured events")
}
