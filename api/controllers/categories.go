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

type categoryCatalog interface {
	GetCategories(ctx context.Context) ([]catalog.Category, error)
	GetCategory(ctx context.Context, slug string) (*catalog.Category, error)
	GetFeaturedCategories(ctx context.Context) ([]catalog.Category, error)
}

// CategoryList serves categories ordered by their merchandising rank.
// Supports ?featured=true.
func CategoryList(cms categoryCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var (
			categories []catalog.Category
			err        error
		)
		if strings.EqualFold(r.URL.Query().Get("featured"), "true") {
			categories, err = cms.GetFeaturedCategories(r.Context())
		} else {
			categories, err = cms.GetCategories(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if categories == nil {
			categories = []catalog.Category{}
		}
		responses.WriteSuccess(w, categories)
	}
}

// CategoryDetail serves one category by slug.
func CategoryDetail(cms categoryCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		category, err := cms.GetCategory(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if category == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "category not found"))
			return
		}

		responses.WriteSuccess(w, category)
	}
}
