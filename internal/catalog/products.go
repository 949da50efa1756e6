package catalog

import "context"

// GetProducts returns every product in the bucket.
func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	return findMany[Product](ctx, c, map[string]any{"type": "products"}, defaultProps, "fetch products")
}

// GetProduct looks a product up by slug; nil when absent.
func (c *Client) GetProduct(ctx context.Context, slug string) (*Product, error) {
	return findOne[Product](ctx, c, map[string]any{"type": "products", "slug": slug}, defaultProps, "fetch product")
}

// GetProductByID looks a product up by object id; nil when absent.
func (c *Client) GetProductByID(ctx context.Context, id string) (*Product, error) {
	return findOne[Product](ctx, c, map[string]any{"type": "products", "id": id}, defaultProps, "fetch product")
}

// GetFeaturedProducts returns products flagged as featured.
func (c *Client) GetFeaturedProducts(ctx context.Context) ([]Product, error) {
	query := map[string]any{
		"type":                      "products",
		"metadata.featured_product": true,
	}
	return findMany[Product](ctx, c, query, defaultProps, "fetch featured products")
}

// GetProductsByCategorySlug filters products whose category select value
// matches the named category. The bucket stores the category as a dropdown
// value rather than an object reference, so the filter runs client-side.
func (c *Client) GetProductsByCategorySlug(ctx context.Context, categorySlug string) ([]Product, error) {
	category, err := c.GetCategory(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return []Product{}, nil
	}

	products, err := c.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	categoryName := category.Title
	if category.Metadata.CategoryName != nil && *category.Metadata.CategoryName != "" {
		categoryName = *category.Metadata.CategoryName
	}

	matched := make([]Product, 0, len(products))
	for _, product := range products {
		if product.Metadata.Category != nil && product.Metadata.Category.Value == categoryName {
			matched = append(matched, product)
		}
	}
	return matched, nil
}
