package routes

import (
	"github.com/dkorir/storefront-api/controllers"
	"github.com/dkorir/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("", controllers.GetOrders)
		orders.POST("", controllers.PlaceOrder)
	}
}
