package models

import (
	"gorm.io/gorm"
)

// CartLine is a booking line item accepted by the local cart.
type CartLine struct {
	gorm.Model
	SessionID      string              `json:"session_id" gorm:"index"`
	IdempotencyKey string              `json:"idempotency_key" gorm:"uniqueIndex"`
	MerchandiseID  string              `json:"merchandise_id"`
	Quantity       int                 `json:"quantity"`
	TotalPrice     string              `json:"total_price"`
	Attributes     []CartLineAttribute `json:"attributes" gorm:"constraint:OnDelete:CASCADE"`
}

type CartLineAttribute struct {
	gorm.Model
	CartLineID uint   `json:"cart_line_id" gorm:"index"`
	Position   int    `json:"position"`
	Key        string `json:"key"`
	Value      string `json:"value"`
}
