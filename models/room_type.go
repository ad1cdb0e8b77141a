package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType carries the nightly rate used for room charges. Bills read the
// rate at generation time through the booking's rooms.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string  `json:"typeName" gorm:"column:type_name;type:varchar(100)"`
	Description string  `json:"description" gorm:"type:text"`
	NightlyRate float64 `json:"nightlyRate" gorm:"column:nightly_rate;type:decimal(10,2)"`
	MaxGuests   uint    `json:"maxGuests" gorm:"column:max_guests"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
