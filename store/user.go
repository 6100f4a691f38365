package store

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/nexxdevv/sunset-traders-api/models"
)

const userStorageKey = "user-storage"

// userState is the persisted slice of the user store. The identity itself is
// never persisted, only the saved products and the authenticated flag. The
// blob is not scoped by uid: switching accounts on one device sees the
// previous account's saved items until the next sign-out clears them.
type userState struct {
	SavedProducts   []models.SavedProduct `json:"savedProducts"`
	IsAuthenticated bool                  `json:"isAuthenticated"`
}

// UserStore holds the current identity and the saved-products set.
// Subscribers run outside the store lock and may call back into the store.
type UserStore struct {
	mu            sync.Mutex
	ls            Persistence
	user          *models.Identity
	authenticated bool
	saved         []models.SavedProduct
	subs          map[string]func([]models.SavedProduct)
}

// NewUserStore builds a user store, rehydrating persisted saved products.
func NewUserStore(ls Persistence) *UserStore {
	s := &UserStore{ls: ls, subs: make(map[string]func([]models.SavedProduct))}
	if ls != nil {
		var state userState
		ok, err := ls.Load(userStorageKey, &state)
		if err != nil {
			log.Printf("❌ Failed to load persisted user state: %v", err)
		} else if ok {
			s.saved = state.SavedProducts
			s.authenticated = state.IsAuthenticated
		}
	}
	return s
}

// SetUser updates the current identity. A nil identity marks the store
// signed out without touching saved products.
func (s *UserStore) SetUser(user *models.Identity) {
	s.mu.Lock()
	s.user = user
	s.authenticated = user != nil
	notify := s.commitLocked()
	s.mu.Unlock()
	notify()
}

// User returns the current identity, or nil when signed out.
func (s *UserStore) User() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether an identity is present.
func (s *UserStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// AddSavedProduct saves a denormalized snapshot of the product. Adding an
// already-saved product is a no-op.
func (s *UserStore) AddSavedProduct(p models.Product) {
	s.mu.Lock()
	for _, sp := range s.saved {
		if sp.ProductID == p.ID {
			s.mu.Unlock()
			return
		}
	}
	s.saved = append(s.saved, models.SavedProduct{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
	})
	notify := s.commitLocked()
	s.mu.Unlock()
	notify()
}

// RemoveSavedProduct drops the product from the saved set. No-op if absent.
func (s *UserStore) RemoveSavedProduct(productID string) {
	s.mu.Lock()
	for i, sp := range s.saved {
		if sp.ProductID == productID {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			notify := s.commitLocked()
			s.mu.Unlock()
			notify()
			return
		}
	}
	s.mu.Unlock()
}

// IsSaved reports saved-set membership.
func (s *UserStore) IsSaved(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range s.saved {
		if sp.ProductID == productID {
			return true
		}
	}
	return false
}

// SavedProducts returns a copy of the saved set.
func (s *UserStore) SavedProducts() []models.SavedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := make([]models.SavedProduct, len(s.saved))
	copy(saved, s.saved)
	return saved
}

// ClearSavedProducts empties the saved set.
func (s *UserStore) ClearSavedProducts() {
	s.mu.Lock()
	s.saved = nil
	notify := s.commitLocked()
	s.mu.Unlock()
	notify()
}

// Logout clears the identity and the saved products in one commit.
func (s *UserStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.saved = nil
	notify := s.commitLocked()
	s.mu.Unlock()
	notify()
}

// Subscribe registers fn to run synchronously after every commit with the
// new saved set. Returns a token for Unsubscribe.
func (s *UserStore) Subscribe(fn func([]models.SavedProduct)) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.subs[id] = fn
	return id
}

// Unsubscribe removes a subscriber.
func (s *UserStore) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// commitLocked persists the partialized state and snapshots the subscribers.
// Caller holds the lock and must invoke the returned notify func after
// releasing it.
func (s *UserStore) commitLocked() func() {
	if s.ls != nil {
		state := userState{SavedProducts: s.saved, IsAuthenticated: s.authenticated}
		if err := s.ls.Save(userStorageKey, state); err != nil {
			log.Printf("❌ Failed to persist user state: %v", err)
		}
	}
	saved := make([]models.SavedProduct, len(s.saved))
	copy(saved, s.saved)
	subs := make([]func([]models.SavedProduct), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return func() {
		for _, fn := range subs {
			fn(saved)
		}
	}
}
