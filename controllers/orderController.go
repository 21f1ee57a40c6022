package controller

import (
	"context"
	"net/http"

	helper "flavor-fusion-server/helpers"
	"flavor-fusion-server/models"
	"flavor-fusion-server/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order models.FoodOrder) (*services.PlaceOrderResult, error)
	CancelOrder(ctx context.Context, orderID string) (*services.CancelOrderResult, error)
}

type FoodOrderStore interface {
	FoodOrdersByBuyer(ctx context.Context, email string) ([]bson.M, error)
}

type OrderController struct {
	Orders  OrderPlacer
	History FoodOrderStore
}

func (o *OrderController) CreateFoodOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var order models.FoodOrder
		if err := c.ShouldBindJSON(&order); err != nil {
			helper.RespondError(c, err)
			return
		}

		result, err := o.Orders.PlaceOrder(ctx, order)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetMyOrderedFoods lists the caller's orders; the email was matched against the token upstream.
func (o *OrderController) GetMyOrderedFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		orders, err := o.History.FoodOrdersByBuyer(ctx, c.Query("email"))
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (o *OrderController) CancelFoodOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		result, err := o.Orders.CancelOrder(ctx, c.Param("id"))
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
