package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BaseEntity struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"` // omitempty lets the store assign the id
	Created_at time.Time          `json:"created_at"`
	Updated_at time.Time          `json:"updated_at"`
}

// Stamp assigns a fresh id and sets both timestamps to now.
func (b *BaseEntity) Stamp() {
	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.Created_at = now
	b.Updated_at = now
}
