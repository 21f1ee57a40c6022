package helper

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "All"

// FoodItemQuery is the parsed form of the food item listing parameters.
// SortOrder is 1, -1, or 0 for the store's natural order. A Limit of 0
// disables pagination.
type FoodItemQuery struct {
	Category  string
	Search    string
	SortField string
	SortOrder int
	Page      int64
	Limit     int64
}

func ParseFoodItemQuery(values url.Values) FoodItemQuery {
	q := FoodItemQuery{
		Category: strings.TrimSpace(values.Get("category")),
		Search:   values.Get("search"),
		Page:     1,
	}

	sortField := strings.TrimSpace(values.Get("sortField"))
	if order := parseSortOrder(values.Get("sortOrder")); sortField != "" && order != 0 && !strings.HasPrefix(sortField, "$") {
		q.SortField = sortField
		q.SortOrder = order
	}

	if limit, err := strconv.ParseInt(values.Get("limit"), 10, 64); err == nil && limit > 0 {
		q.Limit = limit
	}
	if page, err := strconv.ParseInt(values.Get("page"), 10, 64); err == nil && page > 0 {
		q.Page = page
	}
	return q
}

func parseSortOrder(raw string) int {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc", "ascending", "1":
		return 1
	case "desc", "descending", "-1":
		return -1
	}
	return 0
}

// CategoryFilter reports the category to match, or "" when unrestricted.
func (q FoodItemQuery) CategoryFilter() string {
	if q.Category == AllCategories {
		return ""
	}
	return q.Category
}

func (q FoodItemQuery) Filter() bson.M {
	filter := bson.M{}
	if category := q.CategoryFilter(); category != "" {
		filter["food_category"] = category
	}
	if q.Search != "" {
		filter["food_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
	}
	return filter
}

// Sort returns nil when no sort was requested.
func (q FoodItemQuery) Sort() bson.D {
	if q.SortOrder == 0 {
		return nil
	}
	return bson.D{{Key: q.SortField, Value: q.SortOrder}}
}

func (q FoodItemQuery) Paginated() bool {
	return q.Limit > 0
}

func (q FoodItemQuery) Skip() int64 {
	if !q.Paginated() {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

func (q FoodItemQuery) FindOptions() *options.FindOptions {
	opts := options.Find()
	if sort := q.Sort(); sort != nil {
		opts.SetSort(sort)
	}
	if q.Paginated() {
		opts.SetSkip(q.Skip()).SetLimit(q.Limit)
	}
	return opts
}
