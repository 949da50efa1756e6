package catalog

import (
	"context"
	"sort"
	"time"
)

// GetPosts returns all blog posts, newest published first.
func (c *Client) GetPosts(ctx context.Context) ([]Post, error) {
	posts, err := findMany[Post](ctx, c, map[string]any{"type": "posts"}, postProps, "fetch posts")
	if err != nil {
		return nil, err
	}
	sortPostsByPublished(posts)
	return posts, nil
}

// GetPost looks a post up by slug; nil when absent.
func (c *Client) GetPost(ctx context.Context, slug string) (*Post, error) {
	return findOne[Post](ctx, c, map[string]any{"type": "posts", "slug": slug}, postProps, "fetch post")
}

// GetFeaturedPosts returns featured posts, newest published first.
func (c *Client) GetFeaturedPosts(ctx context.Context) ([]Post, error) {
	query := map[string]any{
		"type":                   "posts",
		"metadata.featured_post": true,
	}
	posts, err := findMany[Post](ctx, c, query, postProps, "fetch featured posts")
	if err != nil {
		return nil, err
	}
	sortPostsByPublished(posts)
	return posts, nil
}

// GetPostsByCategory returns posts referencing a blog category id.
func (c *Client) GetPostsByCategory(ctx context.Context, categoryID string) ([]Post, error) {
	query := map[string]any{
		"type":              "posts",
		"metadata.category": categoryID,
	}
	posts, err := findMany[Post](ctx, c, query, postProps, "fetch posts by category")
	if err != nil {
		return nil, err
	}
	sortPostsByPublished(posts)
	return posts, nil
}

// GetPostsByAuthor returns posts referencing an author id.
func (c *Client) GetPostsByAuthor(ctx context.Context, authorID string) ([]Post, error) {
	query := map[string]any{
		"type":            "posts",
		"metadata.author": authorID,
	}
	posts, err := findMany[Post](ctx, c, query, postProps, "fetch posts by author")
	if err != nil {
		return nil, err
	}
	sortPostsByPublished(posts)
	return posts, nil
}

func sortPostsByPublished(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return publishedAt(posts[i]).After(publishedAt(posts[j]))
	})
}

// publishedAt prefers the editorial published_date and falls back to the
// object creation time, mirroring how the storefront orders its blog.
func publishedAt(post Post) time.Time {
	if post.Metadata.PublishedDate != nil {
		if ts, ok := parseFlexibleTime(*post.Metadata.PublishedDate); ok {
			return ts
		}
	}
	if ts, ok := parseFlexibleTime(post.CreatedAt); ok {
		return ts
	}
	return time.Time{}
}

func parseFlexibleTime(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
