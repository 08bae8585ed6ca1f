package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"foodorder/internal/token"
)

// RegisterRoutes attaches the API surface to the router. Responses allow any
// origin so browser clients can call the API directly.
func RegisterRoutes(router *gin.Engine, tokens *token.Service, authHandler *AuthHandler, foodHandler *FoodHandler) {
	router.Use(cors.Default())

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	food := router.Group("/food", AuthRequired(tokens))
	{
		food.GET("/items", foodHandler.GetItems)
		food.POST("/items", foodHandler.CreateItem)
		food.PUT("/items/:id", foodHandler.UpdateItem)

		food.POST("/orders", foodHandler.CreateOrder)
		food.GET("/orders", foodHandler.GetOrders)
		food.PATCH("/orders/:id", foodHandler.UpdateOrderStatus)
		food.PATCH("/orders/:id/payment", foodHandler.UpdateOrderPayment)
	}
}
