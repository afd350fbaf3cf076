package menu

import (
	"context"
	"errors"
	"fmt"

	storemodels "github.com/mltpascual/ordertaker/pkg/models/store"
	mongodb "github.com/mltpascual/ordertaker/pkg/store/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "menu_items"

// Store persists menu catalog documents, scoped per user like the order
// store.
type Store struct {
	coll *mongo.Collection
}

func NewStore(db *mongodb.DB) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

func (s *Store) Insert(ctx context.Context, item storemodels.MenuItem) error {
	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert menu item %s: %w", item.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, userID, id string) (storemodels.MenuItem, error) {
	var item storemodels.MenuItem
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storemodels.MenuItem{}, storemodels.ErrNotFound
	}
	if err != nil {
		return storemodels.MenuItem{}, fmt.Errorf("failed to get menu item %s: %w", id, err)
	}
	return item, nil
}

func (s *Store) List(ctx context.Context, userID string) ([]storemodels.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []storemodels.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

func (s *Store) Replace(ctx context.Context, item storemodels.MenuItem) error {
	result, err := s.coll.ReplaceOne(ctx, bson.M{"_id": item.ID, "user_id": item.UserID}, item)
	if err != nil {
		return fmt.Errorf("failed to replace menu item %s: %w", item.ID, err)
	}
	if result.MatchedCount == 0 {
		return storemodels.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete menu item %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return storemodels.ErrNotFound
	}
	return nil
}
