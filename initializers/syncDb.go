package initializers

import (
	"log"

	"github.com/dkorir/storefront-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Buyer{},
		&models.Seller{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderDetail{},
	)
	log.Println("Database synced successfully.")
}
