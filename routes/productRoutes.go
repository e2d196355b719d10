package routes

import (
	"github.com/dkorir/storefront-api/controllers"
	"github.com/dkorir/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

// Product reads are public; writes require a valid token.
func ProductRoutes(server *gin.Engine) {
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)

	protected := server.Group("/products", middlewares.RequireAuth())
	{
		protected.POST("", controllers.CreateProduct)
		protected.PUT("/:id", controllers.UpdateProduct)
		protected.PATCH("/:id", controllers.UpdateProduct)
		protected.DELETE("/:id", controllers.DeleteProduct)
		protected.POST("/:id/images", controllers.UploadProductImages)
	}
}
