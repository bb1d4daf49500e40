package models

import "time"

type OrderStatus string

const (
	OrderStatusNotProcessed OrderStatus = "not_processed"
	OrderStatusProcessing   OrderStatus = "processing"
	OrderStatusShipped      OrderStatus = "shipped"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef  string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID    uint        `gorm:"index;not null" json:"user_id"`
	User      User        `json:"user"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64     `json:"total"`
	Payment   string      `json:"payment"` // raw gateway result, stored verbatim
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'not_processed'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a cart line at the moment the payment settled.
// Product rows may be edited or deleted later without touching the order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
