package models

// Room statuses. Reserved and Occupied are owned by the booking lifecycle;
// the rest can be set manually by staff.
const (
	RoomStatusAvailable   = "available"
	RoomStatusReserved    = "reserved"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusOutOfOrder  = "out_of_order"
)

// Booking statuses. Only Confirmed and CheckedIn block other bookings.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

// Bill payment statuses, derived from cumulative payments vs. total.
const (
	BillStatusPending       = "pending"
	BillStatusPartiallyPaid = "partially_paid"
	BillStatusPaid          = "paid"
)

// Staff roles carried in the JWT role claim.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
)
