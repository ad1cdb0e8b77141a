package models

import "gorm.io/gorm"

// HotelService is a catalogue entry (laundry, minibar, spa...). UnitPrice is
// the live price; usage rows snapshot it at the moment of use.
type HotelService struct {
	gorm.Model

	BranchID  uint    `gorm:"index;column:branch_id" json:"branch_id"`
	Name      string  `json:"name" gorm:"type:varchar(150)"`
	UnitPrice float64 `json:"unitPrice" gorm:"column:unit_price;type:decimal(10,2)"`
}
