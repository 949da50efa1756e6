package controllers

import (
	"context"
	"net/http"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/responses"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
)

type reviewCatalog interface {
	GetReviews(ctx context.Context) ([]catalog.Review, error)
	GetProductReviews(ctx context.Context, productID string) ([]catalog.Review, error)
}

// ReviewList serves approved reviews, optionally scoped to one product via
// ?product=<id>.
func ReviewList(cms reviewCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var (
			reviews []catalog.Review
			err     error
		)
		if productID := r.URL.Query().Get("product"); productID != "" {
			reviews, err = cms.GetProductReviews(r.Context(), productID)
		} else {
			reviews, err = cms.GetReviews(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if reviews == nil {
			reviews = []catalog.Review{}
		}
		responses.WriteSuccess(w, reviews)
	}
}
