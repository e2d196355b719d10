package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

type Order struct {
	gorm.Model
	BuyerID    uint            `json:"buyerId"`
	OrderDate  time.Time       `json:"orderDate" gorm:"autoCreateTime"`
	Status     string          `json:"status" gorm:"default:Pending"`
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`
	Details    []OrderDetail   `json:"details" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderDetail snapshots the purchased product and its price at order time.
// UnitPrice does not change when the product is repriced later.
type OrderDetail struct {
	gorm.Model
	OrderID   uint            `json:"orderId"`
	ProductID *uint           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
}

type PlaceOrderData struct {
	PaymentMethod   string `json:"payment_method" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}
