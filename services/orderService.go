package services

import (
	"context"
	"errors"
	"fmt"

	"flavor-fusion-server/database"
	"flavor-fusion-server/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Rejection is a business rule refusal.
type Rejection string

func (r Rejection) Error() string { return string(r) }

const (
	NoDataFound       Rejection = "No data found"
	OwnFoodItem       Rejection = "Own food item"
	ItemNotAvailable  Rejection = "Item is not available"
	LessItemAvailable Rejection = "Less item available"
)

// OrderStore calls inside WithTransaction must use the context passed to fn.
type OrderStore interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	FindFoodItem(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error)
	AdjustStock(ctx context.Context, id primitive.ObjectID, units int) (*mongo.UpdateResult, error)
	InsertFoodOrder(ctx context.Context, order *models.FoodOrder) (*mongo.InsertOneResult, error)
	FindFoodOrder(ctx context.Context, id primitive.ObjectID) (*models.FoodOrder, error)
	DeleteFoodOrder(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type OrderService struct {
	store    OrderStore
	validate *validator.Validate
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store, validate: validator.New()}
}

type PlaceOrderResult struct {
	OrderResult  *mongo.InsertOneResult `json:"orderResult"`
	UpdateResult *mongo.UpdateResult    `json:"updateResult"`
}

type CancelOrderResult struct {
	OrderDeleteResult *mongo.DeleteResult `json:"orderDeleteResult"`
	UpdateFoodResult  *mongo.UpdateResult `json:"updateFoodResult"`
}

// PlaceOrder records the order and takes its units out of the item's stock
// in a single transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, order models.FoodOrder) (*PlaceOrderResult, error) {
	if err := s.validate.Struct(order); err != nil {
		return nil, err
	}
	foodID, err := primitive.ObjectIDFromHex(order.Food_id)
	if err != nil {
		return nil, NoDataFound
	}

	var result *PlaceOrderResult
	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		item, err := s.store.FindFoodItem(ctx, foodID)
		if errors.Is(err, database.ErrNotFound) {
			return NoDataFound
		}
		if err != nil {
			return err
		}
		if err := CheckOrder(item, order); err != nil {
			return err
		}

		placed := order
		placed.Stamp()
		placed.Order_date = placed.Created_at
		if placed.Food_name == "" {
			placed.Food_name = item.Food_name
		}
		if placed.Food_image == "" {
			placed.Food_image = item.Food_image
		}
		if placed.Price == 0 {
			placed.Price = item.Price
		}

		orderResult, err := s.store.InsertFoodOrder(ctx, &placed)
		if err != nil {
			return err
		}
		updateResult, err := s.store.AdjustStock(ctx, foodID, placed.Ordered)
		if errors.Is(err, database.ErrStockConflict) {
			return LessItemAvailable
		}
		if err != nil {
			return err
		}

		result = &PlaceOrderResult{OrderResult: orderResult, UpdateResult: updateResult}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CheckOrder applies the placement rules against the item's current state.
func CheckOrder(item *models.FoodItem, order models.FoodOrder) error {
	if item.Added_by_name == order.Buyer_name && item.Added_by_email == order.Buyer_email {
		return OwnFoodItem
	}
	if item.Quantity == 0 {
		return ItemNotAvailable
	}
	if order.Ordered > item.Quantity {
		return LessItemAvailable
	}
	return nil
}

// CancelOrder gives the order's units back to its item and deletes the
// order, in a single transaction. An order whose item has been deleted is
// left in place and reported as an error.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string) (*CancelOrderResult, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, NoDataFound
	}

	var result *CancelOrderResult
	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.store.FindFoodOrder(ctx, id)
		if errors.Is(err, database.ErrNotFound) {
			return NoDataFound
		}
		if err != nil {
			return err
		}

		foodID, err := primitive.ObjectIDFromHex(order.Food_id)
		if err != nil {
			return fmt.Errorf("food item %q referenced by order is not a valid id", order.Food_id)
		}
		if _, err := s.store.FindFoodItem(ctx, foodID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fmt.Errorf("food item %s referenced by order no longer exists", order.Food_id)
			}
			return err
		}

		updateResult, err := s.store.AdjustStock(ctx, foodID, -order.Ordered)
		if err != nil {
			return err
		}
		deleteResult, err := s.store.DeleteFoodOrder(ctx, id)
		if err != nil {
			return err
		}

		result = &CancelOrderResult{OrderDeleteResult: deleteResult, UpdateFoodResult: updateResult}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
