package catalog

import "context"

// GetReviews returns all approved reviews.
func (c *Client) GetReviews(ctx context.Context) ([]Review, error) {
	query := map[string]any{
		"type":              "reviews",
		"metadata.approved": true,
	}
	return findMany[Review](ctx, c, query, defaultProps, "fetch reviews")
}

// GetProductReviews returns the approved reviews referencing a product.
func (c *Client) GetProductReviews(ctx context.Context, productID string) ([]Review, error) {
	query := map[string]any{
		"type":              "reviews",
		"metadata.product":  productID,
		"metadata.approved": true,
	}
	return findMany[Review](ctx, c, query, defaultProps, "fetch product reviews")
}
