package routes

import (
	"net/http"
	"time"

	"github.com/abdurrahmanrahat/grocery-store-server/controllers"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all application routes onto the engine.
func RegisterRoutes(
	r *gin.Engine,
	auth *controllers.AuthController,
	fish *controllers.FishController,
	cart *controllers.CartController,
	order *controllers.OrderController,
) {
	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Server is running smoothly",
			"timestamp": time.Now(),
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)

		api.POST("/fish", fish.CreateFish)
		api.GET("/fishes", fish.GetFishes)
		api.GET("/fishes/:fishId", fish.GetFishByID)
		api.PATCH("/fish/:fishId", fish.UpdateFish)
		api.DELETE("/fish/:fishId", fish.DeleteFish)

		api.POST("/cartFish", cart.AddCartFish)
		api.PATCH("/cartFish/:fishId", cart.UpdateCartFish)
		api.GET("/cartFishes", cart.GetCartFishes)

		api.POST("/orders", order.CreateOrders)
		api.GET("/orders", order.GetOrders)
		api.PATCH("/order/:fishId", order.UpdateOrder)
	}
}
