package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is a guest's stay across one or more rooms. CheckIn/CheckOut are
// the reserved interval; overlap tests against them are inclusive on both
// ends.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BranchID uint `gorm:"index;column:branch_id" json:"branch_id"`
	GuestID  uint `gorm:"index;column:guest_id" json:"guest_id"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`
	Status        string `gorm:"column:status;size:50" json:"status"`

	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`

	Guest Guest         `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Rooms []BookingRoom `gorm:"foreignKey:BookingID" json:"rooms"`
}

// IsBlocking reports whether this booking occupies its rooms for conflict
// purposes.
func (b *Booking) IsBlocking() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCheckedIn
}
