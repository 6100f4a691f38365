package auth

import (
	"context"
	"log"
	"time"

	"github.com/nexxdevv/sunset-traders-api/docstore"
	"github.com/nexxdevv/sunset-traders-api/models"
	"github.com/nexxdevv/sunset-traders-api/store"
)

// Binder synchronizes the local user store with the auth provider's
// session-change events. On first sign-in it lazily provisions the
// users/{uid} document. The existence check precedes the write with no
// transaction, so two simultaneous first sign-ins can both write; the
// content is identical either way.
type Binder struct {
	users *store.UserStore
	docs  docstore.Store
	now   func() time.Time
}

// NewBinder wires the user store to the document store.
func NewBinder(users *store.UserStore, docs docstore.Store) *Binder {
	return &Binder{users: users, docs: docs, now: time.Now}
}

// Run consumes session-change events until the channel closes or the
// context is done.
func (b *Binder) Run(ctx context.Context, events <-chan *models.Identity) {
	for {
		select {
		case <-ctx.Done():
			return
		case ident, ok := <-events:
			if !ok {
				return
			}
			b.OnSessionChange(ctx, ident)
		}
	}
}

// OnSessionChange applies one session-change event: update the current
// identity, and on sign-in provision the user document if it does not exist.
// A nil identity (sign-out) performs no document action; local state
// persists independently. Provisioning failures are logged and do not
// corrupt local state.
func (b *Binder) OnSessionChange(ctx context.Context, ident *models.Identity) {
	b.users.SetUser(ident)
	if ident == nil {
		return
	}

	_, exists, err := b.docs.GetUser(ctx, ident.UID)
	if err != nil {
		log.Printf("❌ Failed to look up user document for %s: %v", ident.UID, err)
		return
	}
	if exists {
		log.Printf("👤 Existing user document found for %s", ident.UID)
		return
	}

	doc := models.UserDoc{
		UID:       ident.UID,
		Name:      ident.Name,
		Email:     ident.Email,
		PhotoURL:  ident.PhotoURL,
		CreatedAt: b.now().UTC().Format(time.RFC3339),
		Favorites: []string{},
		Orders:    []string{},
	}
	if err := b.docs.CreateUser(ctx, doc); err != nil {
		log.Printf("❌ Failed to create user document for %s: %v", ident.UID, err)
		return
	}
	log.Printf("✅ New user document created for %s", ident.UID)
}
