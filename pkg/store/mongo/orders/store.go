package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	storemodels "github.com/mltpascual/ordertaker/pkg/models/store"
	mongodb "github.com/mltpascual/ordertaker/pkg/store/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "orders"

// Store persists order documents. Every operation is scoped to one user's
// partition; a document belonging to another user is indistinguishable from
// a missing one.
type Store struct {
	coll *mongo.Collection
}

func NewStore(db *mongodb.DB) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

func (s *Store) Insert(ctx context.Context, order storemodels.Order) error {
	if _, err := s.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, userID, id string) (storemodels.Order, error) {
	var order storemodels.Order
	err := s.coll.FindOne(ctx, scopedID(userID, id)).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storemodels.Order{}, storemodels.ErrNotFound
	}
	if err != nil {
		return storemodels.Order{}, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return order, nil
}

// List returns every order in the user's partition, newest first.
func (s *Store) List(ctx context.Context, userID string) ([]storemodels.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []storemodels.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (s *Store) Replace(ctx context.Context, order storemodels.Order) error {
	result, err := s.coll.ReplaceOne(ctx, scopedID(order.UserID, order.ID), order)
	if err != nil {
		return fmt.Errorf("failed to replace order %s: %w", order.ID, err)
	}
	if result.MatchedCount == 0 {
		return storemodels.ErrNotFound
	}
	return nil
}

// SetStatus updates an order's status in place, setting or clearing the
// completion instant together with it.
func (s *Store) SetStatus(ctx context.Context, userID, id, status string, completedAt *time.Time) error {
	update := bson.M{"$set": bson.M{"status": status}}
	if completedAt != nil {
		update["$set"].(bson.M)["completed_at"] = completedAt
	} else {
		update["$unset"] = bson.M{"completed_at": ""}
	}

	result, err := s.coll.UpdateOne(ctx, scopedID(userID, id), update)
	if err != nil {
		return fmt.Errorf("failed to update order %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return storemodels.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	result, err := s.coll.DeleteOne(ctx, scopedID(userID, id))
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return storemodels.ErrNotFound
	}
	return nil
}

func scopedID(userID, id string) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}
