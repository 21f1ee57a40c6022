package models

import (
	"time"
)

// FoodOrder records units of a FoodItem bought by a buyer. Food_id is the hex
// id of the item and is not kept in sync if the item is deleted.
type FoodOrder struct {
	BaseEntity  `bson:",inline"`
	Food_id     string    `json:"food_id" validate:"required"`
	Ordered     int       `json:"ordered" validate:"gte=1"`
	Buyer_name  string    `json:"buyer_name" validate:"required"`
	Buyer_email string    `json:"buyer_email" validate:"required,email"`
	Food_name   string    `json:"food_name,omitempty" bson:"food_name,omitempty"`
	Food_image  string    `json:"food_image,omitempty" bson:"food_image,omitempty"`
	Price       float64   `json:"price,omitempty" bson:"price,omitempty"`
	Order_date  time.Time `json:"-" bson:"order_date"` // set when the order is placed
}
