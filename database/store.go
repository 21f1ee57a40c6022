package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrNotFound      = errors.New("no data found")
	ErrDuplicate     = errors.New("already exists")
	ErrStockConflict = errors.New("not enough stock left for the order")
)

// Store is the MongoDB-backed persistence for users, food items and food orders.
type Store struct {
	client     *mongo.Client
	users      *mongo.Collection
	foodItems  *mongo.Collection
	foodOrders *mongo.Collection
}

func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{
		client:     client,
		users:      OpenCollection(client, dbName, UsersCollection),
		foodItems:  OpenCollection(client, dbName, FoodItemsCollection),
		foodOrders: OpenCollection(client, dbName, FoodOrdersCollection),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// WithTransaction runs fn inside a multi-document transaction. The context
// handed to fn carries the session and must be used for every call in fn.
// Transient transaction errors are retried by the driver.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

func duplicate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
