package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsBuyer  bool   `json:"isBuyer"`
	IsSeller bool   `json:"isSeller"`
}

// Buyer is the buyer-side profile, one per user.
type Buyer struct {
	gorm.Model
	UserId          uint   `json:"userId" gorm:"uniqueIndex" binding:"required"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentInfo     string `json:"paymentInfo"`
}

// Seller is the seller-side profile, one per user.
type Seller struct {
	gorm.Model
	UserId      uint   `json:"userId" gorm:"uniqueIndex" binding:"required"`
	StoreName   string `json:"storeName" binding:"required"`
	Bio         string `json:"bio"`
	PhoneNumber string `json:"phoneNumber"`
}

type RegisterData struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsBuyer  bool   `json:"is_buyer"`
	IsSeller bool   `json:"is_seller"`
}

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the allow-list of user fields that go over the wire.
// The password hash stays in the model and never leaves it.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsBuyer  bool   `json:"is_buyer"`
	IsSeller bool   `json:"is_seller"`
}

func (u User) Response() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsBuyer:  u.IsBuyer,
		IsSeller: u.IsSeller,
	}
}
