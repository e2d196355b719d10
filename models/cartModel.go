package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	BuyerID uint `json:"buyerId" gorm:"uniqueIndex"`
	// Derived field. No handler keeps it in sync yet.
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`
	Items      []CartItem      `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	gorm.Model
	CartID    uint `json:"cartId"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity" gorm:"default:1"`
}

type AddToCartData struct {
	ProductId uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}
