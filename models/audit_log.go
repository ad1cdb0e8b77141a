package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog attributes create/update/delete operations to a staff member.
// Writes are fire-and-forget: a failed audit insert never fails the
// operation it describes.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID     uint           `gorm:"index;column:staff_id" json:"staff_id"`
	EntityType  string         `gorm:"column:entity_type;type:varchar(50)" json:"entityType"`
	EntityID    uint           `gorm:"column:entity_id" json:"entityId"`
	Description string         `gorm:"type:varchar(255)" json:"description"`
	Details     datatypes.JSON `gorm:"column:details" json:"details,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
