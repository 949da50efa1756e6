package catalog

import (
	"context"
	"sort"
)

// Categories without an explicit sort_order rank last.
const unrankedSortOrder = 999

// GetCategories returns all categories ordered by their sort_order.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	categories, err := findMany[Category](ctx, c, map[string]any{"type": "categories"}, defaultProps, "fetch categories")
	if err != nil {
		return nil, err
	}
	sortCategories(categories)
	return categories, nil
}

// GetCategory looks a category up by slug; nil when absent.
func (c *Client) GetCategory(ctx context.Context, slug string) (*Category, error) {
	return findOne[Category](ctx, c, map[string]any{"type": "categories", "slug": slug}, defaultProps, "fetch category")
}

// GetFeaturedCategories returns featured categories ordered by sort_order.
func (c *Client) GetFeaturedCategories(ctx context.Context) ([]Category, error) {
	query := map[string]any{
		"type":                       "categories",
		"metadata.featured_category": true,
	}
	categories, err := findMany[Category](ctx, c, query, defaultProps, "fetch featured categories")
	if err != nil {
		return nil, err
	}
	sortCategories(categories)
	return categories, nil
}

func sortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categorySortOrder(categories[i]) < categorySortOrder(categories[j])
	})
}

func categorySortOrder(category Category) int {
	if category.Metadata.SortOrder == nil {
		return unrankedSortOrder
	}
	return *category.Metadata.SortOrder
}
