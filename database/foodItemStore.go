package database

import (
	"context"
	"fmt"
	"time"

	helper "flavor-fusion-server/helpers"
	"flavor-fusion-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListFoodItems returns the page selected by q together with the size of the
// whole collection. The count deliberately ignores q's filter.
func (s *Store) ListFoodItems(ctx context.Context, q helper.FoodItemQuery) ([]models.FoodItem, int64, error) {
	cursor, err := s.foodItems.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("find food items: %w", err)
	}
	items := []models.FoodItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode food items: %w", err)
	}

	total, err := s.foodItems.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, fmt.Errorf("count food items: %w", err)
	}
	return items, total, nil
}

// TopFoodItems returns the n best selling items by cumulative order count.
func (s *Store) TopFoodItems(ctx context.Context, n int64) ([]models.FoodItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: -1}}).SetLimit(n)
	return s.findFoodItems(ctx, bson.M{}, opts)
}

func (s *Store) FoodItemsByContributor(ctx context.Context, email string) ([]models.FoodItem, error) {
	return s.findFoodItems(ctx, bson.M{"added_by_email": email})
}

func (s *Store) findFoodItems(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FoodItem, error) {
	cursor, err := s.foodItems.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find food items: %w", err)
	}
	items := []models.FoodItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode food items: %w", err)
	}
	return items, nil
}

func (s *Store) FindFoodItem(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.foodItems.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, fmt.Errorf("find food item %s: %w", id.Hex(), notFound(err))
	}
	return &item, nil
}

// CountFoodItems counts items sharing name and category; backed by food_name_category_unique.
func (s *Store) CountFoodItems(ctx context.Context, name, category string) (int64, error) {
	count, err := s.foodItems.CountDocuments(ctx, bson.M{"food_name": name, "food_category": category})
	if err != nil {
		return 0, fmt.Errorf("count food items: %w", err)
	}
	return count, nil
}

func (s *Store) InsertFoodItem(ctx context.Context, item *models.FoodItem) (*mongo.InsertOneResult, error) {
	result, err := s.foodItems.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert food item: %w", duplicate(err))
	}
	return result, nil
}

// UpdateFoodItem applies an owner edit and fails with ErrNotFound when no item has id.
func (s *Store) UpdateFoodItem(ctx context.Context, id primitive.ObjectID, update models.FoodItemUpdate) (*mongo.UpdateResult, error) {
	result, err := s.foodItems.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: FoodItemUpdateDoc(update, time.Now().UTC())}})
	if err != nil {
		return nil, fmt.Errorf("update food item %s: %w", id.Hex(), duplicate(err))
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("update food item %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}

// FoodItemUpdateDoc builds the $set document from the fields present in update.
func FoodItemUpdateDoc(update models.FoodItemUpdate, now time.Time) bson.D {
	var updateObj primitive.D

	if update.Food_name != nil {
		updateObj = append(updateObj, bson.E{Key: "food_name", Value: *update.Food_name})
	}
	if update.Food_image != nil {
		updateObj = append(updateObj, bson.E{Key: "food_image", Value: *update.Food_image})
	}
	if update.Food_category != nil {
		updateObj = append(updateObj, bson.E{Key: "food_category", Value: *update.Food_category})
	}
	if update.Quantity != nil {
		updateObj = append(updateObj, bson.E{Key: "quantity", Value: *update.Quantity})
	}
	if update.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *update.Price})
	}
	if update.Origin != nil {
		updateObj = append(updateObj, bson.E{Key: "origin", Value: *update.Origin})
	}
	if update.Ingredients != nil {
		updateObj = append(updateObj, bson.E{Key: "ingredients", Value: *update.Ingredients})
	}
	if update.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *update.Description})
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: now})
	return updateObj
}

func (s *Store) DeleteFoodItem(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.foodItems.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete food item %s: %w", id.Hex(), err)
	}
	return result, nil
}

// AdjustStock moves units from quantity to order; negative units move them
// back. Taking stock only matches while quantity >= units, so an order that
// lost a race against another one fails with ErrStockConflict instead of
// driving quantity below zero.
func (s *Store) AdjustStock(ctx context.Context, id primitive.ObjectID, units int) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	if units > 0 {
		filter["quantity"] = bson.M{"$gte": units}
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "quantity", Value: -units}, {Key: "order", Value: units}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	}

	result, err := s.foodItems.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("adjust stock of %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		if units > 0 {
			return nil, fmt.Errorf("adjust stock of %s: %w", id.Hex(), ErrStockConflict)
		}
		return nil, fmt.Errorf("adjust stock of %s: %w", id.Hex(), ErrNotFound)
	}
	return result, nil
}
