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

type productCatalog interface {
	GetProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, slug string) (*catalog.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]catalog.Product, error)
	GetProductsByCategorySlug(ctx context.Context, categorySlug string) ([]catalog.Product, error)
}

// ProductList serves the product collection. Supports ?featured=true and
// ?category=<slug> filters.
func ProductList(cms productCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var (
			products []catalog.Product
			err      error
		)
		switch {
		case strings.EqualFold(r.URL.Query().Get("featured"), "true"):
			products, err = cms.GetFeaturedProducts(r.Context())
		case r.URL.Query().Get("category") != "":
			products, err = cms.GetProductsByCategorySlug(r.Context(), r.URL.Query().Get("category"))
		default:
			products, err = cms.GetProducts(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if products == nil {
			products = []catalog.Product{}
		}
		responses.WriteSuccess(w, products)
	}
}

// ProductDetail serves one product by slug.
func ProductDetail(cms productCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		product, err := cms.GetProduct(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if product == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}
