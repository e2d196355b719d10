package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkorir/storefront-api/initializers"
	"github.com/dkorir/storefront-api/models"
	"github.com/dkorir/storefront-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupServer builds a router identical to main's over a fresh in-memory
// database.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Buyer{},
		&models.Seller{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderDetail{},
	))
	initializers.DB = db

	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CategoryRoutes(server)
	routes.SellerRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	return server
}

func doJSON(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates a user and returns a usable bearer token.
func registerAndLogin(t *testing.T, server *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, server, http.MethodPost, "/auth/register", "", gin.H{
		"username": "wanjiku",
		"email":    "wanjiku@example.com",
		"password": "s3cretpass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, server, http.MethodPost, "/auth/login", "", gin.H{
		"username": "wanjiku",
		"password": "s3cretpass",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody(t, rec)["token"].(string)
}

// seedSeller creates a seller profile for the registered test user.
func seedSeller(t *testing.T, server *gin.Engine) uint {
	t.Helper()

	rec := doJSON(t, server, http.MethodPost, "/sellers", "", gin.H{
		"userId":    1,
		"storeName": "Wanjiku Wares",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var seller models.Seller
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &seller))
	return seller.ID
}
