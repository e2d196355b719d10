package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUD(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)

	rec := doJSON(t, server, http.MethodPost, "/categories", token, gin.H{
		"name":        "Electronics",
		"description": "gadgets and appliances",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/categories/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Electronics", decodeBody(t, rec)["name"])

	rec = doJSON(t, server, http.MethodPut, "/categories/1", token, gin.H{
		"name": "Home Electronics",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Home Electronics", decodeBody(t, rec)["name"])

	rec = doJSON(t, server, http.MethodDelete, "/categories/1", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/categories/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryWriteRequiresAuth(t *testing.T) {
	server := setupServer(t)

	rec := doJSON(t, server, http.MethodPost, "/categories", "", gin.H{"name": "Toys"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCategoryValidation(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)

	rec := doJSON(t, server, http.MethodPost, "/categories", token, gin.H{"description": "nameless"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := decodeBody(t, rec)["errors"].(map[string]any)
	assert.Contains(t, errs, "name")
}

// Deleting a category must detach its products, not delete them.
func TestCategoryDeleteDetachesProducts(t *testing.T) {
	server := setupServer(t)
	token := registerAndLogin(t, server)
	sellerId := seedSeller(t, server)
	categoryId := createCategory(t, server, token, "Shirts")

	createProduct(t, server, token, gin.H{
		"name":       "Red Shirt",
		"price":      "12.00",
		"sellerId":   sellerId,
		"categoryId": categoryId,
	})

	rec := doJSON(t, server, http.MethodDelete, "/categories/1", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/products/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	product := decodeBody(t, rec)
	assert.Equal(t, "Red Shirt", product["name"])
	assert.Nil(t, product["categoryId"])
}
