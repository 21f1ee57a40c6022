package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection      = "users"
	FoodItemsCollection  = "food-items"
	FoodOrdersCollection = "food-orders"
)

// DBInstance connects to uri and pings the primary before returning.
func DBInstance(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

func OpenCollection(client *mongo.Client, dbName, collectionName string) *mongo.Collection {
	return client.Database(dbName).Collection(collectionName)
}

// EnsureIndexes creates the unique compound indexes backing the duplicate
// checks plus the lookup indexes used by the owner listings.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}, {Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("name_email_unique"),
			},
		},
		FoodItemsCollection: {
			{
				Keys:    bson.D{{Key: "food_name", Value: 1}, {Key: "food_category", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("food_name_category_unique"),
			},
			{Keys: bson.D{{Key: "added_by_email", Value: 1}}},
			{Keys: bson.D{{Key: "order", Value: -1}}},
		},
		FoodOrdersCollection: {
			{Keys: bson.D{{Key: "buyer_email", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := OpenCollection(client, dbName, name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
