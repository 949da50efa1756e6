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

type collectionCatalog interface {
	GetCollections(ctx context.Context) ([]catalog.Collection, error)
	GetCollection(ctx context.Context, slug string) (*catalog.Collection, error)
	GetFeaturedCollections(ctx context.Context) ([]catalog.Collection, error)
}

// CollectionList serves curated collections. Supports ?featured=true.
func CollectionList(cms collectionCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var (
			collections []catalog.Collection
			err         error
		)
		if strings.EqualFold(r.URL.Query().Get("featured"), "true") {
			collections, err = cms.GetFeaturedCollections(r.Context())
		} else {
			collections, err = cms.GetCollections(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if collections == nil {
			collections = []catalog.Collection{}
		}
		responses.WriteSuccess(w, collections)
	}
}

// CollectionDetail serves one collection by slug.
func CollectionDetail(cms collectionCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		collection, err := cms.GetCollection(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if collection == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "collection not found"))
			return
		}

		responses.WriteSuccess(w, collection)
	}
}
