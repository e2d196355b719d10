package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Storefront API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account
- POST "/auth/login" - Access user account

CART
- GET "/cart" - View cart
- POST "/cart" - Add a product to the cart

ORDERS
- GET "/orders" - List orders
- POST "/orders" - Place an order

PRODUCTS
- GET "/products" - List products (?search=, ?ordering=)
- GET "/products/{id}" - Get product by ID
- POST "/products" - Create product
- PUT "/products/{id}" - Update product
- DELETE "/products/{id}" - Delete product
- POST "/products/{id}/images" - Upload product images

CATEGORIES
- CRUD under "/categories"

SELLERS
- CRUD under "/sellers"`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
