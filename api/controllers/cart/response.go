package cart

import cartsvc "github.com/cosmic-community/luxe-fashion-boutique-clone/internal/cart"

// CartPayload is the wire shape for every cart endpoint.
type CartPayload struct {
	Items    []cartsvc.LineItem `json:"items"`
	Subtotal string             `json:"subtotal"`
	Count    int                `json:"count"`
}

func newCartPayload(view *cartsvc.View) CartPayload {
	payload := CartPayload{Subtotal: "0.00", Items: []cartsvc.LineItem{}}
	if view == nil {
		return payload
	}
	payload.Subtotal = view.Subtotal
	payload.Count = view.Count
	if view.Items != nil {
		payload.Items = view.Items
	}
	return payload
}
