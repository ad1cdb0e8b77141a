package models

import "gorm.io/gorm"

// BookingRoom links a booking to one of its rooms. Nights is snapshotted at
// creation so later rate or date edits don't rewrite history.
type BookingRoom struct {
	gorm.Model

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`
	RoomID    uint `gorm:"index;column:room_id" json:"room_id"`

	Nights int `gorm:"column:nights;default:0" json:"nights"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
