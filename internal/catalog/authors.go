package catalog

import "context"

// GetAuthors returns every blog author.
func (c *Client) GetAuthors(ctx context.Context) ([]Author, error) {
	return findMany[Author](ctx, c, map[string]any{"type": "authors"}, defaultProps, "fetch authors")
}

// GetAuthor looks an author up by slug; nil when absent.
func (c *Client) GetAuthor(ctx context.Context, slug string) (*Author, error) {
	return findOne[Author](ctx, c, map[string]any{"type": "authors", "slug": slug}, defaultProps, "fetch author")
}

// GetBlogCategories returns every blog category.
func (c *Client) GetBlogCategories(ctx context.Context) ([]BlogCategory, error) {
	return findMany[BlogCategory](ctx, c, map[string]any{"type": "blog-categories"}, defaultProps, "fetch blog categories")
}

// GetBlogCategory looks a blog category up by slug; nil when absent.
func (c *Client) GetBlogCategory(ctx context.Context, slug string) (*BlogCategory, error) {
	return findOne[BlogCategory](ctx, c, map[string]any{"type": "blog-categories", "slug": slug}, defaultProps, "fetch blog category")
}
