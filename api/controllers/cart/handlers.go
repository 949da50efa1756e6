package cart

import (
	"context"
	"net/http"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/middleware"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/responses"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/validators"
	cartsvc "github.com/cosmic-community/luxe-fashion-boutique-clone/internal/cart"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
)

type cartService interface {
	Get(ctx context.Context, sessionID string) (*cartsvc.View, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int, selectedSize string) (*cartsvc.View, error)
	RemoveItem(ctx context.Context, sessionID, productID, selectedSize string) (*cartsvc.View, error)
	UpdateQuantity(ctx context.Context, sessionID, productID, selectedSize string, quantity int) (*cartsvc.View, error)
	Clear(ctx context.Context, sessionID string) (*cartsvc.View, error)
}

// CartFetch returns the session's cart with derived totals.
func CartFetch(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartPayload(view))
	}
}

// CartAddItem merges a product variant into the cart.
func CartAddItem(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body AddItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddItem(r.Context(), sessionID, body.ProductID, body.quantityOrDefault(), body.SelectedSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartPayload(view))
	}
}

// CartUpdateItem sets the quantity on an existing line; zero removes it.
func CartUpdateItem(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body UpdateItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateQuantity(r.Context(), sessionID, body.ProductID, body.SelectedSize, *body.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartPayload(view))
	}
}

// CartRemoveItem drops a product variant from the cart. The variant is
// addressed by query parameters so the request can be a bare DELETE.
func CartRemoveItem(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID := r.URL.Query().Get("product_id")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product_id query parameter is required"))
			return
		}
		selectedSize := r.URL.Query().Get("selected_size")

		view, err := svc.RemoveItem(r.Context(), sessionID, productID, selectedSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartPayload(view))
	}
}

// CartClear empties the session's cart.
func CartClear(svc cartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Clear(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartPayload(view))
	}
}

func sessionFromRequest(r *http.Request, svc cartService) (string, error) {
	if svc == nil {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable")
	}
	sessionID := middleware.CartSessionFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart session missing")
	}
	return sessionID, nil
}
