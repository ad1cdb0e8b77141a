package models

import "gorm.io/gorm"

// Room belongs to one branch and one room type. Status is a hint only:
// availability decisions always go through the conflict check, never the
// status field alone.
type Room struct {
	gorm.Model

	BranchID   uint `json:"branch_id" gorm:"index;column:branch_id"`
	RoomTypeID uint `json:"roomTypeId" gorm:"index;column:room_type_id"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`
	Status     string `json:"status" gorm:"type:varchar(50);default:'available'"`

	Branch   Branch   `gorm:"foreignKey:BranchID;references:ID" json:"branch,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"roomType,omitempty"`
}
