package routes

import (
	"github.com/dkorir/storefront-api/controllers"
	"github.com/dkorir/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
	}
}
