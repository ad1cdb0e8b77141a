package models

import "gorm.io/gorm"

// Staff is a hotel employee account. Password holds a bcrypt hash.
type Staff struct {
	gorm.Model

	BranchID uint   `gorm:"index;column:branch_id" json:"branch_id"`
	FullName string `json:"fullName" gorm:"column:full_name;type:varchar(150)"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(150)"`
	Password string `json:"-" gorm:"type:varchar(100)"`
	Role     string `json:"role" gorm:"type:varchar(50)"`

	Branch Branch `gorm:"foreignKey:BranchID;references:ID" json:"branch,omitempty"`
}
