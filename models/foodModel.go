package models

// FoodItem is a dish offered by a contributor. Quantity is the stock left and
// Order the running total of units sold.
type FoodItem struct {
	BaseEntity     `bson:",inline"`
	Food_name      string  `json:"food_name" validate:"required,min=2,max=100"`
	Food_category  string  `json:"food_category" validate:"required"`
	Food_image     string  `json:"food_image"`
	Price          float64 `json:"price" validate:"gte=0"`
	Quantity       int     `json:"quantity" validate:"gte=0"`
	Order          int     `json:"order"`
	Origin         string  `json:"origin"`
	Ingredients    string  `json:"ingredients"`
	Description    string  `json:"description"`
	Added_by_name  string  `json:"added_by_name"`
	Added_by_email string  `json:"added_by_email" validate:"required,email"`
}

// FoodItemUpdate carries an owner edit; nil fields are left untouched.
type FoodItemUpdate struct {
	ID            string   `json:"id" validate:"required"`
	Food_name     *string  `json:"food_name" validate:"omitempty,min=2,max=100"`
	Food_image    *string  `json:"food_image"`
	Food_category *string  `json:"food_category" validate:"omitempty,min=1"`
	Quantity      *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Origin        *string  `json:"origin"`
	Ingredients   *string  `json:"ingredients"`
	Description   *string  `json:"description"`
}
