package cart

import (
	"context"
	"errors"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
)

// View is the read model handed to the HTTP layer after every operation:
// the lines plus the derived totals, so clients never compute money.
type View struct {
	Items    []LineItem `json:"items"`
	Subtotal string     `json:"subtotal"`
	Count    int        `json:"count"`
}

type productLoader interface {
	GetProductByID(ctx context.Context, id string) (*catalog.Product, error)
}

// Service owns the hydrate-mutate-persist cycle for session carts.
type Service struct {
	store    SnapshotStore
	products productLoader
	log      *logger.Logger
}

func NewService(store SnapshotStore, products productLoader, log *logger.Logger) *Service {
	return &Service{store: store, products: products, log: log}
}

// Get loads the session's cart. Sessions without a snapshot, and sessions
// whose snapshot no longer parses, both start from an empty cart; a
// corrupt snapshot is logged but never surfaced to the shopper.
func (s *Service) Get(ctx context.Context, sessionID string) (*View, error) {
	cart, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(cart), nil
}

// AddItem merges quantity of a product+size into the cart. The quantity
// must be positive, and the product must exist in the catalog.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string, quantity int, selectedSize string) (*View, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	cart, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.Add(*product, quantity, selectedSize)
	return s.persist(ctx, sessionID, cart)
}

// RemoveItem drops the line matching product+size. Removing a line that is
// not in the cart succeeds without effect.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID, selectedSize string) (*View, error) {
	cart, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.Remove(productID, selectedSize)
	return s.persist(ctx, sessionID, cart)
}

// UpdateQuantity sets the quantity on the matching line; zero or less
// removes it. Updating a line that is not in the cart succeeds without
// effect.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID, selectedSize string, quantity int) (*View, error) {
	cart, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.UpdateQuantity(productID, selectedSize, quantity)
	return s.persist(ctx, sessionID, cart)
}

// Clear empties the cart and persists the empty snapshot.
func (s *Service) Clear(ctx context.Context, sessionID string) (*View, error) {
	cart := NewCart(nil)
	return s.persist(ctx, sessionID, cart)
}

func (s *Service) hydrate(ctx context.Context, sessionID string) (*Cart, error) {
	raw, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, ErrNoSnapshot) {
		return NewCart(nil), nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	items, err := DecodeSnapshot(raw)
	if err != nil {
		s.log.Error(ctx, "cart snapshot unreadable, starting empty", err)
		return NewCart(nil), nil
	}
	return NewCart(items), nil
}

func (s *Service) persist(ctx context.Context, sessionID string, cart *Cart) (*View, error) {
	payload, err := EncodeSnapshot(cart.Items())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.store.Save(ctx, sessionID, payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return s.view(cart), nil
}

func (s *Service) view(cart *Cart) *View {
	return &View{
		Items:    cart.Items(),
		Subtotal: cart.Total().StringFixed(2),
		Count:    cart.Count(),
	}
}
