package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"plantcart/internal/catalog"
	"plantcart/internal/logger"
	"plantcart/internal/storage"

	"go.uber.org/zap"
)

// Store holds the shopper's in-progress selection. Every mutation either
// fully applies and re-derives the aggregates, or leaves the state
// untouched; quantities above availability are rejected, never clamped.
//
// Persistence is best effort: a storage failure is logged and the in-memory
// state stands for the rest of the session.
type Store struct {
	mu      sync.Mutex
	state   State
	storage storage.Store
	key     string
}

func NewStore(st storage.Store, key string) *Store {
	return &Store{
		state:   State{Items: []LineItem{}},
		storage: st,
		key:     key,
	}
}

// Restore loads the last persisted snapshot. It never fails: an absent or
// corrupt snapshot degrades to an empty cart.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.FromCtx(ctx).Warn("failed to read cart snapshot, starting empty", zap.Error(err))
		}
		s.state = State{Items: []LineItem{}}
		return
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		logger.FromCtx(ctx).Warn("corrupt cart snapshot, starting empty", zap.Error(err))
		s.state = State{Items: []LineItem{}}
		return
	}

	if st.Items == nil {
		st.Items = []LineItem{}
	}
	s.state = st
	// never trust persisted aggregates
	s.recompute()
}

// AddItem adds quantity units of the product, merging into an existing line
// item for the same product id. The merged snapshot is refreshed to the
// incoming one, so the stock check runs against current availability.
func (s *Store) AddItem(ctx context.Context, p catalog.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if !p.InStock {
		return ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(p.ID)

	finalQty := quantity
	if idx >= 0 {
		finalQty += s.state.Items[idx].Quantity
	}
	if finalQty > p.AvailableQty {
		return ErrInsufficientStock
	}

	if idx >= 0 {
		s.state.Items[idx].Product = p
		s.state.Items[idx].Quantity = finalQty
	} else {
		s.state.Items = append(s.state.Items, LineItem{Product: p, Quantity: quantity})
	}

	s.recompute()
	s.persist(ctx)
	return nil
}

// UpdateQuantity sets the line item's quantity. Zero is not accepted here;
// removal is a distinct action.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return ErrItemNotFound
	}
	if quantity > s.state.Items[idx].Product.AvailableQty {
		return ErrInsufficientStock
	}

	s.state.Items[idx].Quantity = quantity
	s.recompute()
	s.persist(ctx)
	return nil
}

// RemoveItem deletes the line item for the product id; absent ids are a
// no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return
	}

	s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	s.recompute()
	s.persist(ctx)
}

// Clear empties the cart. Called exactly once per completed order.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = []LineItem{}
	s.recompute()
	s.persist(ctx)
}

// State returns a copy of the current cart state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Items = make([]LineItem, len(s.state.Items))
	copy(st.Items, s.state.Items)
	return st
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Items) == 0
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(productID string) int {
	for i, it := range s.state.Items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

// recompute re-derives the aggregates from the line items. O(n) on every
// mutation; carts are small and correctness beats cleverness here.
func (s *Store) recompute() {
	total := 0
	amount := 0.0
	for _, it := range s.state.Items {
		total += it.Quantity
		amount += it.Subtotal()
	}
	s.state.TotalItems = total
	s.state.TotalAmount = amount
}

func (s *Store) persist(ctx context.Context) {
	s.state.Version++
	s.state.SavedAt = time.Now()

	raw, err := json.Marshal(s.state)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to encode cart snapshot", zap.Error(err))
		return
	}

	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		// durability is best effort; the in-memory state stands
		logger.FromCtx(ctx).Warn("failed to persist cart snapshot",
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
}
