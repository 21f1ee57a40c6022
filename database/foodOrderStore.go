package database

import (
	"context"
	"fmt"

	"flavor-fusion-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Store) InsertFoodOrder(ctx context.Context, order *models.FoodOrder) (*mongo.InsertOneResult, error) {
	result, err := s.foodOrders.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert food order: %w", err)
	}
	return result, nil
}

func (s *Store) FindFoodOrder(ctx context.Context, id primitive.ObjectID) (*models.FoodOrder, error) {
	var order models.FoodOrder
	if err := s.foodOrders.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, fmt.Errorf("find food order %s: %w", id.Hex(), notFound(err))
	}
	return &order, nil
}

func (s *Store) DeleteFoodOrder(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := s.foodOrders.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete food order %s: %w", id.Hex(), err)
	}
	return result, nil
}

// FoodOrdersByBuyer lists a buyer's orders, each joined with its food item
// under "food". The join yields null for an order whose item was deleted.
func (s *Store) FoodOrdersByBuyer(ctx context.Context, email string) ([]bson.M, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "buyer_email", Value: email}}}}
	convertStage := bson.D{{Key: "$addFields", Value: bson.D{
		{Key: "food_oid", Value: bson.D{{Key: "$convert", Value: bson.D{
			{Key: "input", Value: "$food_id"},
			{Key: "to", Value: "objectId"},
			{Key: "onError", Value: nil},
			{Key: "onNull", Value: nil},
		}}}},
	}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: FoodItemsCollection},
		{Key: "localField", Value: "food_oid"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "food"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{{Key: "path", Value: "$food"}, {Key: "preserveNullAndEmptyArrays", Value: true}}}}
	fillStage := bson.D{{Key: "$addFields", Value: bson.D{{Key: "food", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$food", nil}}}}}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{{Key: "food_oid", Value: 0}}}}

	cursor, err := s.foodOrders.Aggregate(ctx, mongo.Pipeline{
		matchStage, convertStage, lookupStage, unwindStage, fillStage, projectStage,
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate food orders: %w", err)
	}

	orders := []bson.M{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode food orders: %w", err)
	}
	return orders, nil
}
