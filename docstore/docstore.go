package docstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/nexxdevv/sunset-traders-api/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection  = "users"
	ordersCollection = "orders"
)

// Store is the external document database holding user and order records.
type Store interface {
	// GetUser fetches users/{uid}. The bool reports existence.
	GetUser(ctx context.Context, uid string) (*models.UserDoc, bool, error)
	// CreateUser writes users/{uid}.
	CreateUser(ctx context.Context, doc models.UserDoc) error
	// AddOrder appends a new document to the orders collection.
	AddOrder(ctx context.Context, order models.Order) error
	// OrdersByUser returns every order whose userId equals uid.
	OrdersByUser(ctx context.Context, uid string) ([]models.Order, error)
}

// FirestoreStore backs Store with a Firestore client.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetUser(ctx context.Context, uid string) (*models.UserDoc, bool, error) {
	snap, err := s.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	var doc models.UserDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, false, err
	}
	return &doc, true, nil
}

func (s *FirestoreStore) CreateUser(ctx context.Context, doc models.UserDoc) error {
	_, err := s.client.Collection(usersCollection).Doc(doc.UID).Set(ctx, doc)
	return err
}

func (s *FirestoreStore) AddOrder(ctx context.Context, order models.Order) error {
	_, _, err := s.client.Collection(ordersCollection).Add(ctx, order)
	return err
}

func (s *FirestoreStore) OrdersByUser(ctx context.Context, uid string) ([]models.Order, error) {
	snaps, err := s.client.Collection(ordersCollection).
		Where("userId", "==", uid).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(snaps))
	for _, snap := range snaps {
		var order models.Order
		if err := snap.DataTo(&order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
