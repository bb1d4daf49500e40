package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"index" json:"slug"`
	Description string         `gorm:"not null" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	CategoryID  uint           `gorm:"index" json:"category_id"`
	Category    Category       `json:"category"`
	Quantity    int            `json:"quantity"` // stock on hand, never negative
	Photo       string         `json:"photo"`
	Shipping    bool           `json:"shipping"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
