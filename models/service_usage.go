package models

import "gorm.io/gorm"

// ServiceUsage records a service consumed during a stay. PriceAtUsage is
// immutable after creation, which keeps historical bills stable when the
// catalogue price changes.
type ServiceUsage struct {
	gorm.Model

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`
	ServiceID uint `gorm:"index;column:service_id" json:"service_id"`

	Quantity     int     `json:"quantity"`
	PriceAtUsage float64 `gorm:"column:price_at_usage;type:decimal(10,2)" json:"priceAtUsage"`

	Service HotelService `gorm:"foreignKey:ServiceID;references:ID" json:"service,omitempty"`
}
