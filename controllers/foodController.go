package controller

import (
	"context"
	"math"
	"net/http"

	helper "flavor-fusion-server/helpers"
	"flavor-fusion-server/models"
	"flavor-fusion-server/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const topFoodItems = 6

type FoodItemStore interface {
	ListFoodItems(ctx context.Context, q helper.FoodItemQuery) ([]models.FoodItem, int64, error)
	TopFoodItems(ctx context.Context, n int64) ([]models.FoodItem, error)
	FoodItemsByContributor(ctx context.Context, email string) ([]models.FoodItem, error)
	FindFoodItem(ctx context.Context, id primitive.ObjectID) (*models.FoodItem, error)
	CountFoodItems(ctx context.Context, name, category string) (int64, error)
	InsertFoodItem(ctx context.Context, item *models.FoodItem) (*mongo.InsertOneResult, error)
	UpdateFoodItem(ctx context.Context, id primitive.ObjectID, update models.FoodItemUpdate) (*mongo.UpdateResult, error)
	DeleteFoodItem(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type FoodController struct {
	Items FoodItemStore
}

// GetFoodItems serves ?category=&search=&sortField=&sortOrder=&page=&limit=.
func (f *FoodController) GetFoodItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		query := helper.ParseFoodItemQuery(c.Request.URL.Query())
		items, total, err := f.Items.ListFoodItems(ctx, query)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"totalDataCount": total, "result": items})
	}
}

func (f *FoodController) GetTopFoodItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		items, err := f.Items.TopFoodItems(ctx, topFoodItems)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (f *FoodController) GetFoodItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := objectID(c.Param("id"))
		if err != nil {
			helper.RespondError(c, err)
			return
		}
		item, err := f.Items.FindFoodItem(ctx, id)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// CreateFoodItem adds an item unless one with the same name and category exists.
func (f *FoodController) CreateFoodItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var food models.FoodItem
		if err := c.ShouldBindJSON(&food); err != nil {
			helper.RespondError(c, err)
			return
		}
		if validationErr := validate.Struct(food); validationErr != nil {
			helper.RespondError(c, validationErr)
			return
		}

		count, err := f.Items.CountFoodItems(ctx, food.Food_name, food.Food_category)
		if err != nil {
			respond(c, err)
			return
		}
		if count > 0 {
			helper.RespondMessage(c, alreadyExists)
			return
		}

		food.Stamp()
		food.Order = 0
		food.Price = toFixed(food.Price, 2)

		result, err := f.Items.InsertFoodItem(ctx, &food)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetMyAddedFoods lists the caller's own items; the email was matched against the token upstream.
func (f *FoodController) GetMyAddedFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		items, err := f.Items.FoodItemsByContributor(ctx, c.Query("email"))
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (f *FoodController) UpdateMyAddedFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var update models.FoodItemUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			helper.RespondError(c, err)
			return
		}
		if validationErr := validate.Struct(update); validationErr != nil {
			helper.RespondError(c, validationErr)
			return
		}
		id, err := objectID(update.ID)
		if err != nil {
			helper.RespondMessage(c, string(services.NoDataFound))
			return
		}
		if update.Price != nil {
			price := toFixed(*update.Price, 2)
			update.Price = &price
		}

		result, err := f.Items.UpdateFoodItem(ctx, id, update)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (f *FoodController) DeleteMyAddedFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := objectID(c.Param("id"))
		if err != nil {
			helper.RespondError(c, err)
			return
		}
		result, err := f.Items.DeleteFoodItem(ctx, id)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func toFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}
