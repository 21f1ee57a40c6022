package routes

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"flavor-fusion-server/database"
	helper "flavor-fusion-server/helpers"
	"flavor-fusion-server/models"
	"flavor-fusion-server/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memStore is an in-memory stand-in for database.Store. Collections are
// slices so the natural order is insertion order, as with a fresh collection.
type memStore struct {
	mu     sync.Mutex
	users  []models.User
	items  []models.FoodItem
	orders []models.FoodOrder
}

var (
	_ Store               = (*memStore)(nil)
	_ Store               = (*database.Store)(nil)
	_ services.OrderStore = (*memStore)(nil)
	_ services.OrderStore = (*database.Store)(nil)
)

func (m *memStore) Ping(context.Context) error { return nil }

// WithTransaction snapshots the collections and restores them if fn fails.
// The lock is not held while fn runs; tests drive requests one at a time.
func (m *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	items := append([]models.FoodItem(nil), m.items...)
	orders := append([]models.FoodOrder(nil), m.orders...)
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.items, m.orders = items, orders
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) CountUsers(_ context.Context, name, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, u := range m.users {
		if u.Name == name && u.Email == email {
			n++
		}
	}
	return n, nil
}

func (m *memStore) InsertUser(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Name == user.Name && u.Email == user.Email {
			return nil, database.ErrDuplicate
		}
	}
	m.users = append(m.users, *user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (m *memStore) ListFoodItems(_ context.Context, q helper.FoodItemQuery) ([]models.FoodItem, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := []models.FoodItem{}
	category := q.CategoryFilter()
	for _, item := range m.items {
		if category != "" && item.Food_category != category {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(item.Food_name), strings.ToLower(q.Search)) {
			continue
		}
		result = append(result, item)
	}

	if q.SortOrder != 0 {
		sort.SliceStable(result, func(i, j int) bool {
			a, b := sortKey(result[i], q.SortField), sortKey(result[j], q.SortField)
			if q.SortOrder > 0 {
				return a < b
			}
			return a > b
		})
	}

	if q.Paginated() {
		start := min(q.Skip(), int64(len(result)))
		end := min(start+q.Limit, int64(len(result)))
		result = result[start:end]
	}
	return result, int64(len(m.items)), nil
}

func sortKey(item models.FoodItem, field string) float64 {
	switch field {
	case "price":
		return item.Price
	case "quantity":
		return float64(item.Quantity)
	case "order":
		return float64(item.Order)
	}
	return 0
}

func (m *memStore) TopFoodItems(_ context.Context, n int64) ([]models.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := append([]models.FoodItem{}, m.items...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order > items[j].Order })
	if int64(len(items)) > n {
		items = items[:n]
	}
	return items, nil
}

func (m *memStore) FoodItemsByContributor(_ context.Context, email string) ([]models.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := []models.FoodItem{}
	for _, item := range m.items {
		if item.Added_by_email == email {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *memStore) itemIndex(id primitive.ObjectID) int {
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (m *memStore) FindFoodItem(_ context.Context, id primitive.ObjectID) (*models.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.itemIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("find food item %s: %w", id.Hex(), database.ErrNotFound)
	}
	item := m.items[i]
	return &item, nil
}

func (m *memStore) CountFoodItems(_ context.Context, name, category string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, item := range m.items {
		if item.Food_name == name && item.Food_category == category {
			n++
		}
	}
	return n, nil
}

func (m *memStore) InsertFoodItem(_ context.Context, item *models.FoodItem) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *item)
	return &mongo.InsertOneResult{InsertedID: item.ID}, nil
}

func (m *memStore) UpdateFoodItem(_ context.Context, id primitive.ObjectID, update models.FoodItemUpdate) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.itemIndex(id)
	if i < 0 {
		return nil, database.ErrNotFound
	}
	item := &m.items[i]
	if update.Food_name != nil {
		item.Food_name = *update.Food_name
	}
	if update.Food_category != nil {
		item.Food_category = *update.Food_category
	}
	if update.Quantity != nil {
		item.Quantity = *update.Quantity
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) DeleteFoodItem(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.itemIndex(id)
	if i < 0 {
		return &mongo.DeleteResult{}, nil
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (m *memStore) AdjustStock(_ context.Context, id primitive.ObjectID, units int) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.itemIndex(id)
	if i < 0 {
		return nil, database.ErrNotFound
	}
	if units > 0 && m.items[i].Quantity < units {
		return nil, database.ErrStockConflict
	}
	m.items[i].Quantity -= units
	m.items[i].Order += units
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) InsertFoodOrder(_ context.Context, order *models.FoodOrder) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, *order)
	return &mongo.InsertOneResult{InsertedID: order.ID}, nil
}

func (m *memStore) FindFoodOrder(_ context.Context, id primitive.ObjectID) (*models.FoodOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.orders {
		if order.ID == id {
			return &order, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memStore) DeleteFoodOrder(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, order := range m.orders {
		if order.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (m *memStore) FoodOrdersByBuyer(_ context.Context, email string) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := []bson.M{}
	for _, order := range m.orders {
		if order.Buyer_email != email {
			continue
		}
		var food interface{}
		if id, err := primitive.ObjectIDFromHex(order.Food_id); err == nil {
			if i := m.itemIndex(id); i >= 0 {
				food = m.items[i]
			}
		}
		orders = append(orders, bson.M{
			"_id":         order.ID,
			"food_id":     order.Food_id,
			"ordered":     order.Ordered,
			"buyer_email": order.Buyer_email,
			"food":        food,
		})
	}
	return orders, nil
}
