package routes

import (
	"github.com/dkorir/storefront-api/controllers"
	"github.com/gin-gonic/gin"
)

// Seller endpoints are left open, matching the upstream behavior.
func SellerRoutes(server *gin.Engine) {
	server.GET("/sellers", controllers.GetSellers)
	server.GET("/sellers/:id", controllers.GetSeller)
	server.POST("/sellers", controllers.CreateSeller)
	server.PUT("/sellers/:id", controllers.UpdateSeller)
	server.PATCH("/sellers/:id", controllers.UpdateSeller)
	server.DELETE("/sellers/:id", controllers.DeleteSeller)
}
