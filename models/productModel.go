package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type Product struct {
	gorm.Model
	Name              string          `json:"name" binding:"required"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	QuantityAvailable int             `json:"quantityAvailable"`
	IsActive          bool            `json:"isActive" gorm:"default:true"`
	Images            datatypes.JSON  `json:"images"`
	SellerId          uint            `json:"sellerId" binding:"required"`
	// Nullable so deleting a category detaches its products instead of removing them.
	CategoryId *uint `json:"categoryId"`
}
