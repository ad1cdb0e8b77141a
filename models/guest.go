package models

import "gorm.io/gorm"

// Guest is a registered hotel customer. Bookings reference guests; guest
// records outlive individual stays.
type Guest struct {
	gorm.Model

	BranchID uint   `gorm:"index;column:branch_id" json:"branch_id"`
	FullName string `json:"fullName" gorm:"column:full_name;type:varchar(150)"`
	Email    string `json:"email" gorm:"type:varchar(150)"`
	Phone    string `json:"phone" gorm:"type:varchar(50)"`

	IDType   string `json:"idType" gorm:"column:id_type;type:varchar(50)"`
	IDNumber string `json:"idNumber" gorm:"column:id_number;type:varchar(100)"`

	Nationality string `json:"nationality" gorm:"type:varchar(100)"`
	Address     string `json:"address" gorm:"type:varchar(255)"`
}
