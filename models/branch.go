package models

import "gorm.io/gorm"

// Branch is an independently staffed hotel location. Rooms, staff and
// bookings are partitioned by branch.
type Branch struct {
	gorm.Model

	Name    string `json:"name" gorm:"uniqueIndex;type:varchar(100)"`
	Address string `json:"address" gorm:"type:varchar(255)"`
	Phone   string `json:"phone" gorm:"type:varchar(50)"`

	Rooms []Room `gorm:"foreignKey:BranchID" json:"rooms,omitempty"`
}
