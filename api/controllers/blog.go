package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/responses"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
)

type blogCatalog interface {
	GetPosts(ctx context.Context) ([]catalog.Post, error)
	GetPost(ctx context.Context, slug string) (*catalog.Post, error)
	GetFeaturedPosts(ctx context.Context) ([]catalog.Post, error)
	GetPostsByCategory(ctx context.Context, categoryID string) ([]catalog.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]catalog.Post, error)
	GetAuthors(ctx context.Context) ([]catalog.Author, error)
	GetAuthor(ctx context.Context, slug string) (*catalog.Author, error)
	GetBlogCategories(ctx context.Context) ([]catalog.BlogCategory, error)
	GetBlogCategory(ctx context.Context, slug string) (*catalog.BlogCategory, error)
}

// PostList serves blog posts newest first. Supports ?featured=true,
// ?category=<id> and ?author=<id> filters.
func PostList(cms blogCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var (
			posts []catalog.Post
			err   error
		)
		switch {
		case strings.EqualFold(r.URL.Query().Get("featured"), "true"):
			posts, err = cms.GetFeaturedPosts(r.Context())
		case r.URL.Query().Get("category") != "":
			posts, err = cms.GetPostsByCategory(r.Context(), r.URL.Query().Get("category"))
		case r.URL.Query().Get("author") != "":
			posts, err = cms.GetPostsByAuthor(r.Context(), r.URL.Query().Get("author"))
		default:
			posts, err = cms.GetPosts(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if posts == nil {
			posts = []catalog.Post{}
		}
		responses.WriteSuccess(w, posts)
	}
}

// PostDetail serves one blog post by slug.
func PostDetail(cms blogCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		post, err := cms.GetPost(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if post == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "post not found"))
			return
		}

		responses.WriteSuccess(w, post)
	}
}

// AuthorList serves blog authors.
func AuthorList(cms blogCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		authors, err := cms.GetAuthors(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if authors == nil {
			authors = []catalog.Author{}
		}
		responses.WriteSuccess(w, authors)
	}
}

// AuthorDetail serves one author by slug.
func AuthorDetail(cms blogCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		author, err := cms.GetAuthor(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if author == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "author not found"))
			return
		}

		responses.WriteSuccess(w, author)
	}
}

// BlogCategoryList serves blog categories.
func BlogCategoryList(cms blogCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		categories, err := cms.GetBlogCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if categories == nil {
			categories = []catalog.BlogCategory{}
		}
		responses.WriteSuccess(w, categories)
	}
}

// BlogCategoryDetail serves one blog category by slug.
func BlogCategoryDetail(cms blogCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		category, err := cms.GetBlogCategory(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if category == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "blog category not found"))
			return
		}

		responses.WriteSuccess(w, category)
	}
}
