package routes

import (
	"flavor-fusion-server/config"
	controller "flavor-fusion-server/controllers"
	"flavor-fusion-server/middleware"

	"github.com/gin-gonic/gin"
)

// Store is everything the API needs from persistence.
type Store interface {
	controller.UserStore
	controller.FoodItemStore
	controller.FoodOrderStore
	controller.Pinger
}

func SetupRouter(cfg config.Config, store Store, orders controller.OrderPlacer) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.AllowedOrigins))

	router.GET("/", controller.Root())
	router.GET("/health", controller.Health(store))

	auth := &controller.AuthController{Secret: cfg.AccessTokenSecret, Production: cfg.IsProduction()}
	users := &controller.UserController{Users: store}
	foods := &controller.FoodController{Items: store}
	foodOrders := &controller.OrderController{Orders: orders, History: store}
	gate := middleware.Authentication(cfg.AccessTokenSecret)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/jwt", auth.IssueToken())
		v1.POST("/logout", auth.Logout())

		v1.POST("/users", users.CreateUser())

		v1.GET("/food-items", foods.GetFoodItems())
		v1.GET("/top-food-items", foods.GetTopFoodItems())
		v1.GET("/food-item/:id", gate, foods.GetFoodItem())
		v1.POST("/food-items", foods.CreateFoodItem())

		v1.GET("/my-added-foods", gate, middleware.RequireEmailMatch(), foods.GetMyAddedFoods())
		v1.PATCH("/my-added-foods", foods.UpdateMyAddedFood())
		v1.DELETE("/my-added-foods/:id", foods.DeleteMyAddedFood())

		v1.POST("/food-orders", foodOrders.CreateFoodOrder())
		v1.GET("/my-ordered-foods", gate, middleware.RequireEmailMatch(), foodOrders.GetMyOrderedFoods())
		v1.DELETE("/my-ordered-foods/:id", foodOrders.CancelFoodOrder())
	}

	return router
}
