package model

import "time"

// Order links one Customer to one Item with a quantity.
// Both references are enforced as foreign keys; a referenced
// customer or item cannot be deleted while the order exists.
type Order struct {
	CreatedAt  time.Time `json:"created_at"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	ID         uint      `json:"id"              gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id"     gorm:"index;not null"`
	ItemID     uint      `json:"item_id"         gorm:"index;not null"`
	Quantity   int       `json:"quantity"        gorm:"not null"`

	Item *Item `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}
