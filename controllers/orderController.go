package controllers

import (
	"net/http"

	"github.com/dkorir/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// GetOrders returns an empty list. Order placement does not persist yet.
func GetOrders(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": []any{}})
}

// PlaceOrder validates the payment and shipping fields and echoes them back.
func PlaceOrder(ctx *gin.Context) {
	var orderData models.PlaceOrderData
	if err := ctx.ShouldBindJSON(&orderData); err != nil {
		sendValidationErrors(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":          "Order placed successfully",
		"payment_method":   orderData.PaymentMethod,
		"shipping_address": orderData.ShippingAddress,
	})
}
