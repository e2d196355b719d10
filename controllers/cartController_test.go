package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCartEmpty(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)

	rec := doJSON(t, server, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Empty(t, body["items"])
	assert.Equal(t, float64(0), body["total_price"])
}

func TestCartRequiresAuth(t *testing.T) {
	server := setupServer(t)

	rec := doJSON(t, server, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := doJSON(t, server, http.MethodPost, "/cart", "not-a-token", gin.H{"product_id": 1})
	assert.Equal(t, http.StatusUnauthorized, req.Code)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)

	rec := doJSON(t, server, http.MethodPost, "/cart", token, gin.H{
		"product_id": 999,
		"quantity":   50,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCartComputesTotal(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)
	sellerId := seedSeller(t, server)

	createProduct(t, server, token, gin.H{
		"name":     "Mug",
		"price":    "9.99",
		"sellerId": sellerId,
	})

	rec := doJSON(t, server, http.MethodPost, "/cart", token, gin.H{
		"product_id": 1,
		"quantity":   3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cart := decodeBody(t, rec)["cart"].(map[string]any)
	assert.Equal(t, float64(1), cart["product_id"])
	assert.Equal(t, "Mug", cart["product_name"])
	assert.Equal(t, "9.99", cart["price_each"])
	assert.Equal(t, float64(3), cart["quantity"])
	assert.Equal(t, "29.97", cart["total_value"])
}

func TestAddToCartDefaultQuantity(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)
	sellerId := seedSeller(t, server)

	createProduct(t, server, token, gin.H{
		"name":     "Mug",
		"price":    "9.99",
		"sellerId": sellerId,
	})

	rec := doJSON(t, server, http.MethodPost, "/cart", token, gin.H{"product_id": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	cart := decodeBody(t, rec)["cart"].(map[string]any)
	assert.Equal(t, float64(1), cart["quantity"])
	assert.Equal(t, "9.99", cart["total_value"])
}

func TestAddToCartMissingProductId(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)

	rec := doJSON(t, server, http.MethodPost, "/cart", token, gin.H{"quantity": 2})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := decodeBody(t, rec)["errors"].(map[string]any)
	assert.Contains(t, errs, "product_id")
}
