package models

import "gorm.io/gorm"

// Bill is one-to-one with a booking. Regeneration updates the amount columns
// in place; PaymentStatus is owned by payment recording, not by
// regeneration.
type Bill struct {
	gorm.Model

	BookingID uint `gorm:"uniqueIndex;column:booking_id" json:"booking_id"`

	RoomCharges    float64 `gorm:"column:room_charges;type:decimal(10,2)" json:"roomCharges"`
	ServiceCharges float64 `gorm:"column:service_charges;type:decimal(10,2)" json:"serviceCharges"`
	Discount       float64 `gorm:"type:decimal(10,2);default:0.0" json:"discount"`
	Tax            float64 `gorm:"type:decimal(10,2);default:0.0" json:"tax"`
	Total          float64 `gorm:"type:decimal(10,2)" json:"total"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(50);default:'pending'" json:"paymentStatus"`

	Payments []Payment `gorm:"foreignKey:BillID" json:"payments,omitempty"`
}
