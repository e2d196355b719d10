package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dkorir/storefront-api/initializers"
	"github.com/dkorir/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCart returns an empty cart. Cart contents are not persisted yet, so
// there is nothing to read back.
func GetCart(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":       []any{},
		"total_price": 0,
	})
}

// AddToCart prices a cart line from the live product record and returns the
// computation. It writes nothing.
func AddToCart(ctx *gin.Context) {
	var addData models.AddToCartData
	if err := ctx.ShouldBindJSON(&addData); err != nil {
		sendValidationErrors(ctx, err)
		return
	}

	if addData.Quantity == 0 {
		addData.Quantity = 1
	}
	if addData.Quantity < 1 {
		sendFieldError(ctx, "quantity", "must be at least 1")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, addData.ProductId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	totalValue := product.Price.Mul(decimal.NewFromInt(int64(addData.Quantity)))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Added product %d x%d to cart", product.ID, addData.Quantity),
		"cart": gin.H{
			"product_id":   product.ID,
			"product_name": product.Name,
			"price_each":   product.Price,
			"quantity":     addData.Quantity,
			"total_value":  totalValue,
		},
	})
}
