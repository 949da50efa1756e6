package catalog

import "context"

// GetTermsOfService returns the terms-of-service page record; nil when the
// bucket has none.
func (c *Client) GetTermsOfService(ctx context.Context) (*TermsOfService, error) {
	return findOne[TermsOfService](ctx, c, map[string]any{"type": "terms-of-service"}, defaultProps, "fetch terms of service")
}
