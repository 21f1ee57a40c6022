package database

import (
	"context"
	"fmt"

	"flavor-fusion-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountUsers counts users sharing both name and email; backed by name_email_unique.
func (s *Store) CountUsers(ctx context.Context, name, email string) (int64, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"name": name, "email": email})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (s *Store) InsertUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", duplicate(err))
	}
	return result, nil
}
