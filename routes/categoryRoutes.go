package routes

import (
	"github.com/dkorir/storefront-api/controllers"
	"github.com/dkorir/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

// Category reads are public; writes require a valid token.
func CategoryRoutes(server *gin.Engine) {
	server.GET("/categories", controllers.GetCategories)
	server.GET("/categories/:id", controllers.GetCategory)

	protected := server.Group("/categories", middlewares.RequireAuth())
	{
		protected.POST("", controllers.CreateCategory)
		protected.PUT("/:id", controllers.UpdateCategory)
		protected.PATCH("/:id", controllers.UpdateCategory)
		protected.DELETE("/:id", controllers.DeleteCategory)
	}
}
