package model

import "time"

// Item is a purchasable menu entry referenced by Orders.
type Item struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string  `gorm:"size:64;not null" json:"name"`
	Price float64 `gorm:"not null"         json:"price"`
	ID    uint    `gorm:"primaryKey"       json:"id"`
}
