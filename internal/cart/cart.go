package cart

import (
	"github.com/shopspring/decimal"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
)

// LineItem is one cart entry: a full product record plus the shopper's
// quantity and optional size choice. The product is embedded whole so the
// cart can render without refetching the catalog.
type LineItem struct {
	Product      catalog.Product `json:"product"`
	Quantity     int             `json:"quantity"`
	SelectedSize string          `json:"selectedSize,omitempty"`
}

// Key returns the merge identity of the line: product id plus selected
// size. Lines without a size form their own bucket per product.
func (li LineItem) Key() string {
	return li.Product.ID + "\x00" + li.SelectedSize
}

// Subtotal is the line's price contribution. Products without a price
// contribute zero rather than failing the cart.
func (li LineItem) Subtotal() decimal.Decimal {
	if li.Product.Metadata.Price == nil {
		return decimal.Zero
	}
	price := decimal.NewFromFloat(*li.Product.Metadata.Price)
	return price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is the in-memory aggregate for one session. It is not safe for
// concurrent use; the service serializes access per session.
type Cart struct {
	items []LineItem
}

// NewCart builds a cart from previously persisted lines. Lines with a
// non-positive quantity are dropped so a damaged snapshot cannot smuggle
// them back in.
func NewCart(items []LineItem) *Cart {
	c := &Cart{}
	for _, item := range items {
		if item.Quantity > 0 && item.Product.ID != "" {
			c.items = append(c.items, item)
		}
	}
	return c
}

// Items returns a copy of the cart's lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add merges quantity into the line matching product+size, or appends a
// new line when none exists. Quantity must be positive; callers validate.
func (c *Cart) Add(product catalog.Product, quantity int, selectedSize string) {
	incoming := LineItem{Product: product, Quantity: quantity, SelectedSize: selectedSize}
	for i, item := range c.items {
		if item.Key() == incoming.Key() {
			c.items[i].Quantity += quantity
			// refresh the embedded record so later catalog edits show up
			c.items[i].Product = product
			return
		}
	}
	c.items = append(c.items, incoming)
}

// Remove drops the line matching product+size. Absent lines are a no-op.
func (c *Cart) Remove(productID, selectedSize string) {
	key := LineItem{Product: catalog.Product{Object: catalog.Object{ID: productID}}, SelectedSize: selectedSize}.Key()
	for i, item := range c.items {
		if item.Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity on the matching line. A quantity of
// zero or less removes the line instead. Absent lines are a no-op.
func (c *Cart) UpdateQuantity(productID, selectedSize string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, selectedSize)
		return
	}
	key := LineItem{Product: catalog.Product{Object: catalog.Object{ID: productID}}, SelectedSize: selectedSize}.Key()
	for i, item := range c.items {
		if item.Key() == key {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Count sums the quantities across every line.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Total sums each line's price*quantity. Unpriced products count as zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
