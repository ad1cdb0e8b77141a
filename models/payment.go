package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment rows are append-only; there is no refund or reversal path.
type Payment struct {
	gorm.Model

	BillID uint `gorm:"index;column:bill_id" json:"bill_id"`

	Amount float64   `gorm:"type:decimal(10,2)" json:"amount"`
	Method string    `gorm:"type:varchar(50)" json:"method"`
	PaidAt time.Time `gorm:"column:paid_at" json:"paidAt"`
	Status string    `gorm:"type:varchar(50);default:'completed'" json:"status"`
}
