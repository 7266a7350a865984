package model

import "time"

// Customer represents a customer with one-to-many Orders.
// JSON tags for HTTP responses.
type Customer struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"size:64;not null" json:"name"`
	Phone string `gorm:"size:12;not null" json:"phone"`

	Orders []Order `json:"orders,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	ID     uint    `json:"id"              gorm:"primaryKey"`
}
