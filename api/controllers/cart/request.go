package cart

// AddItemRequest adds quantity of a product variant to the cart. A nil
// quantity defaults to one, matching how storefront "add to cart" buttons
// behave.
type AddItemRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Quantity     *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
	SelectedSize string `json:"selectedSize,omitempty" validate:"omitempty,max=32"`
}

func (r AddItemRequest) quantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// UpdateItemRequest sets the quantity on an existing line. Zero removes it.
type UpdateItemRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Quantity     *int   `json:"quantity" validate:"required,min=0"`
	SelectedSize string `json:"selectedSize,omitempty" validate:"omitempty,max=32"`
}
