package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nexxdevv/sunset-traders-api/models"
)

const cartStorageKey = "cart-storage"

// Persistence is the slice of the local store the reactive stores need.
type Persistence interface {
	Save(key string, v any) error
	Load(key string, out any) (bool, error)
}

// CartStore holds the process-wide cart. Every mutation persists the whole
// collection and notifies subscribers before returning, so observers never
// see a gap between a mutation and its effects. Subscribers run outside the
// store lock and may call back into the store.
type CartStore struct {
	mu    sync.Mutex
	ls    Persistence
	items []models.CartLineItem
	subs  map[string]func([]models.CartLineItem)
}

// NewCartStore builds a cart store, rehydrating any previously persisted
// contents.
func NewCartStore(ls Persistence) *CartStore {
	s := &CartStore{ls: ls, subs: make(map[string]func([]models.CartLineItem))}
	if ls != nil {
		if _, err := ls.Load(cartStorageKey, &s.items); err != nil {
			log.Printf("❌ Failed to load persisted cart: %v", err)
		}
	}
	return s
}

// AddToCart merges the product into the cart: an existing line item has its
// quantity incremented, otherwise a new line item is appended with a
// denormalized snapshot of the product. Quantities below 1 are clamped to 1.
func (s *CartStore) AddToCart(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, models.CartLineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}
	notify := s.commitLocked()
	s.mu.Unlock()
	notify()
}

// IncrementQuantity bumps the matching line item by one. No-op if the
// product is not in the cart.
func (s *CartStore) IncrementQuantity(productID string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity++
			notify := s.commitLocked()
			s.mu.Unlock()
			notify()
			return
		}
	}
	s.mu.Unlock()
}

// DecrementQuantity lowers the matching line item by one, removing it when
// the quantity drops to zero. No-op if the product is not in the cart.
func (s *CartStore) DecrementQuantity(productID string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity--
			if s.items[i].Quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			notify := s.commitLocked()
			s.mu.Unlock()
			notify()
			return
		}
	}
	s.mu.Unlock()
}

// RemoveItem drops the line item regardless of quantity. Idempotent.
func (s *CartStore) RemoveItem(productID string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			notify := s.commitLocked()
			s.mu.Unlock()
			notify()
			return
		}
	}
	s.mu.Unlock()
}

// ClearCart empties the cart. Called after a successful order
// reconciliation.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	s.items = nil
	notify := s.commitLocked()
	s.mu.Unlock()
	notify()
}

// Items returns a copy of the current line items.
func (s *CartStore) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Subscribe registers fn to run synchronously after every commit with the
// new contents. Returns a token for Unsubscribe.
func (s *CartStore) Subscribe(fn func([]models.CartLineItem)) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.subs[id] = fn
	return id
}

// Unsubscribe removes a subscriber.
func (s *CartStore) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// commitLocked persists the whole collection and snapshots the subscribers.
// Caller holds the lock and must invoke the returned notify func after
// releasing it.
func (s *CartStore) commitLocked() func() {
	if s.ls != nil {
		if err := s.ls.Save(cartStorageKey, s.items); err != nil {
			log.Printf("❌ Failed to persist cart: %v", err)
		}
	}
	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	subs := make([]func([]models.CartLineItem), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return func() {
		for _, fn := range subs {
			fn(items)
		}
	}
}
