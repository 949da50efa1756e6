package catalog

import "context"

// GetCollections returns every collection in the bucket.
func (c *Client) GetCollections(ctx context.Context) ([]Collection, error) {
	return findMany[Collection](ctx, c, map[string]any{"type": "collections"}, defaultProps, "fetch collections")
}

// GetCollection looks a collection up by slug; nil when absent.
func (c *Client) GetCollection(ctx context.Context, slug string) (*Collection, error) {
	return findOne[Collection](ctx, c, map[string]any{"type": "collections", "slug": slug}, defaultProps, "fetch collection")
}

// GetFeaturedCollections returns collections flagged as featured.
func (c *Client) GetFeaturedCollections(ctx context.Context) ([]Collection, error) {
	query := map[string]any{
		"type":                         "collections",
		"metadata.featured_collection": true,
	}
	return findMany[Collection](ctx, c, query, defaultProps, "fetch featured collections")
}
