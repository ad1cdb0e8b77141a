package services

import "errors"

// Business-rule rejections are sentinel values. Services wrap them with the
// offending identifier (fmt.Errorf("%w: ...")), controllers match with
// errors.Is and translate to a status code. Anything not in this list is an
// infrastructure fault and maps to 500.
var (
	ErrInvalidDateRange  = errors.New("invalid_date_range")
	ErrNoRoomsGiven      = errors.New("no_rooms_given")
	ErrRoomNotInBranch   = errors.New("room_not_in_branch")
	ErrRoomConflict      = errors.New("room_conflict")
	ErrInvalidTransition = errors.New("invalid_transition")

	ErrBookingNotFound = errors.New("booking_not_found")
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrGuestNotFound   = errors.New("guest_not_found")
	ErrBillNotFound    = errors.New("bill_not_found")
	ErrServiceNotFound = errors.New("service_not_found")
	ErrStaffNotFound   = errors.New("staff_not_found")
	ErrBranchNotFound  = errors.New("branch_not_found")

	ErrRoomTypeNotFound = errors.New("room_type_not_found")

	ErrInvalidInput     = errors.New("invalid_input")
	ErrInvalidAmount    = errors.New("invalid_amount")
	ErrOverpayment      = errors.New("overpayment")
	ErrNotCheckedIn     = errors.New("not_checked_in")
	ErrStatusNotAllowed = errors.New("status_not_allowed")

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrDuplicate          = errors.New("duplicate")
)
