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

type eventCatalog interface {
	GetEvents(ctx context.Context) ([]catalog.Event, error)
	GetEvent(ctx context.Context, slug string) (*catalog.Event, error)
	GetFeaturedEvents(ctx context.Context) ([]catalog.Event, error)
}

// EventList serves boutique events. Supports ?featured=true.
func EventList(cms eventCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var (
			events []catalog.Event
			err    error
		)
		if strings.EqualFold(r.URL.Query().Get("featured"), "true") {
			events, err = cms.GetFeaturedEvents(r.Context())
		} else {
			events, err = cms.GetEvents(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if events == nil {
			events = []catalog.Event{}
		}
		responses.WriteSuccess(w, events)
	}
}

// EventDetail serves one event by slug.
func EventDetail(cms eventCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cms == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		event, err := cms.GetEvent(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if event == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "event not found"))
			return
		}

		responses.WriteSuccess(w, event)
	}
}
