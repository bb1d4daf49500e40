package models

import "time"

type CartStatus string

const (
	CartStatusActive  CartStatus = "active"
	CartStatusOrdered CartStatus = "ordered" // closed by a successful payment
)

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"index" json:"user_id"`
	Status    CartStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint      `gorm:"index;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_product" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"` // always >= 1, an item at 0 is removed
	AddedAt   time.Time `json:"added_at"`
}
