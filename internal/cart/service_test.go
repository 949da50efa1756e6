package cart

import (
	"context"
	"io"
	"testing"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
)

type memoryStore struct {
	snapshots map[string][]byte
	saves     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{snapshots: map[string][]byte{}}
}

func (m *memoryStore) Load(_ context.Context, sessionID string) ([]byte, error) {
	data, ok := m.snapshots[sessionID]
	if !ok {
		return nil, ErrNoSnapshot
	}
	return data, nil
}

func (m *memoryStore) Save(_ context.Context, sessionID string, data []byte) error {
	m.saves++
	m.snapshots[sessionID] = data
	return nil
}

func (m *memoryStore) Delete(_ context.Context, sessionID string) error {
	delete(m.snapshots, sessionID)
	return nil
}

type stubCatalog struct {
	products map[string]catalog.Product
}

func (s *stubCatalog) GetProductByID(_ context.Context, id string) (*catalog.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func newTestService(store SnapshotStore, products ...catalog.Product) *Service {
	byID := map[string]catalog.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewService(store, &stubCatalog{products: byID}, log)
}

func TestServiceAddPersistsFullSnapshot(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, product("p1", 100), product("p2", 50))
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "sess", "p1", 2, "M")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if view.Count != 2 || view.Subtotal != "200.00" {
		t.Fatalf("unexpected view after add: %+v", view)
	}

	view, err = svc.AddItem(ctx, "sess", "p2", 1, "")
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if view.Count != 3 || view.Subtotal != "250.00" {
		t.Fatalf("unexpected view after second add: %+v", view)
	}
	if store.saves != 2 {
		t.Errorf("expected a snapshot write per mutation, got %d", store.saves)
	}

	// a fresh read comes straight from the snapshot
	view, err = svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Items) != 2 || view.Subtotal != "250.00" {
		t.Fatalf("snapshot did not survive reload: %+v", view)
	}
}

func TestServiceAddRejectsNonPositiveQuantity(t *testing.T) {
	svc := newTestService(newMemoryStore(), product("p1", 100))

	for _, qty := range []int{0, -3} {
		_, err := svc.AddItem(context.Background(), "sess", "p1", qty, "")
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Errorf("quantity %d: expected validation error, got %v", qty, err)
		}
	}
}

func TestServiceAddUnknownProduct(t *testing.T) {
	svc := newTestService(newMemoryStore())

	_, err := svc.AddItem(context.Background(), "sess", "ghost", 1, "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestServiceRemoveAbsentLineIsNoOp(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, product("p1", 100))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", "p1", 1, "M"); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.RemoveItem(ctx, "sess", "p1", "XL")
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(view.Items) != 1 {
		t.Errorf("expected untouched cart, got %d lines", len(view.Items))
	}
}

func TestServiceUpdateQuantityZeroRemoves(t *testing.T) {
	svc := newTestService(newMemoryStore(), product("p1", 100))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", "p1", 2, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.UpdateQuantity(ctx, "sess", "p1", "", 0)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(view.Items) != 0 || view.Subtotal != "0.00" {
		t.Fatalf("expected empty cart, got %+v", view)
	}
}

func TestServiceClear(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, product("p1", 100))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess", "p1", 2, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.Clear(ctx, "sess")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if view.Count != 0 {
		t.Fatalf("expected cleared cart, got %+v", view)
	}

	// the empty snapshot is persisted, not just held in memory
	view, err = svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("expected empty cart from snapshot, got %d lines", len(view.Items))
	}
}

func TestServiceCorruptSnapshotStartsEmpty(t *testing.T) {
	store := newMemoryStore()
	store.snapshots["sess"] = []byte(`{{{ definitely not json`)
	svc := newTestService(store, product("p1", 100))
	ctx := context.Background()

	view, err := svc.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get with corrupt snapshot: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart from corrupt snapshot, got %+v", view)
	}

	// the next mutation overwrites the corrupt payload
	if _, err := svc.AddItem(ctx, "sess", "p1", 1, ""); err != nil {
		t.Fatalf("add after corruption: %v", err)
	}
	items, err := DecodeSnapshot(store.snapshots["sess"])
	if err != nil {
		t.Fatalf("stored snapshot should be healthy again: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 line in repaired snapshot, got %d", len(items))
	}
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, product("p1", 100))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "alice", "p1", 2, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("expected bob's cart to be empty, got %d lines", len(view.Items))
	}
}
