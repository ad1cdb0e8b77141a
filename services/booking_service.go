package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"hotelms-backend/models"
	"hotelms-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var blockingStatuses = []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}

// BookingService owns the booking lifecycle: availability, conflict
// detection, creation, check-in/out and cancellation.
type BookingService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewBookingService(db *gorm.DB, audit *AuditService) *BookingService {
	return &BookingService{DB: db, Audit: audit}
}

// lockForUpdate adds a row lock on MySQL. sqlite (the test harness) has no
// FOR UPDATE grammar and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// hasConflict reports whether any blocking booking on the room overlaps the
// proposed interval, bounds inclusive. A query failure propagates as an
// error and is never reported as "no conflict".
func (s *BookingService) hasConflict(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var bookings []models.Booking
	err := tx.
		Joins("JOIN booking_rooms ON booking_rooms.booking_id = bookings.id").
		Where("booking_rooms.room_id = ? AND booking_rooms.deleted_at IS NULL", roomID).
		Where("bookings.status IN ?", blockingStatuses).
		Find(&bookings).Error
	if err != nil {
		return false, fmt.Errorf("conflict check for room %d failed: %w", roomID, err)
	}

	for i := range bookings {
		if utils.IntervalsOverlap(bookings[i].CheckIn, bookings[i].CheckOut, checkIn, checkOut) {
			return true, nil
		}
	}
	return false, nil
}

// HasConflict is the read-only variant used outside a transaction.
func (s *BookingService) HasConflict(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	return s.hasConflict(s.DB, roomID, checkIn, checkOut)
}

// FindAvailableRooms returns the branch's available rooms with no blocking
// booking overlapping the window, in stable room-number order. The status
// column is only a hint: a room marked available can still carry a future
// confirmed booking, so the per-room conflict check is never skipped.
func (s *BookingService) FindAvailableRooms(branchID uint, checkIn, checkOut time.Time, roomTypeID *uint) ([]models.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDateRange)
	}

	q := s.DB.Preload("RoomType").
		Where("branch_id = ? AND status = ?", branchID, models.RoomStatusAvailable)
	if roomTypeID != nil {
		q = q.Where("room_type_id = ?", *roomTypeID)
	}

	var candidates []models.Room
	if err := q.Order("room_number ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidate rooms: %w", err)
	}

	available := make([]models.Room, 0, len(candidates))
	for _, room := range candidates {
		conflict, err := s.hasConflict(s.DB, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if !conflict {
			available = append(available, room)
		}
	}
	return available, nil
}

type CreateBookingInput struct {
	GuestID  uint
	BranchID uint
	CheckIn  time.Time
	CheckOut time.Time
	RoomIDs  []uint
	StaffID  uint
}

// CreateBooking validates and creates a booking in one transaction. The
// affected room rows are locked in ascending id order before the conflict
// check, closing the check-then-act window between two concurrent requests
// for the same room.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, fmt.Errorf("%w: check-out must be strictly after check-in", ErrInvalidDateRange)
	}
	if len(in.RoomIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one room is required", ErrNoRoomsGiven)
	}

	roomIDs := make([]uint, 0, len(in.RoomIDs))
	seen := map[uint]bool{}
	for _, id := range in.RoomIDs {
		if !seen[id] {
			seen[id] = true
			roomIDs = append(roomIDs, id)
		}
	}
	sort.Slice(roomIDs, func(i, j int) bool { return roomIDs[i] < roomIDs[j] })

	var guest models.Guest
	if err := s.DB.First(&guest, in.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: guest %d", ErrGuestNotFound, in.GuestID)
		}
		return nil, fmt.Errorf("db error checking guest %d: %w", in.GuestID, err)
	}

	nights := utils.DaysBetween(in.CheckIn, in.CheckOut)

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the room rows first; competing bookings for any shared room
		// queue up here.
		var rooms []models.Room
		if err := lockForUpdate(tx).
			Where("id IN ?", roomIDs).
			Order("id ASC").
			Find(&rooms).Error; err != nil {
			return fmt.Errorf("failed to lock rooms: %w", err)
		}

		if len(rooms) != len(roomIDs) {
			found := map[uint]bool{}
			for _, r := range rooms {
				found[r.ID] = true
			}
			for _, id := range roomIDs {
				if !found[id] {
					return fmt.Errorf("%w: room %d", ErrRoomNotFound, id)
				}
			}
		}

		for _, room := range rooms {
			if room.BranchID != in.BranchID {
				return fmt.Errorf("%w: room %s belongs to branch %d", ErrRoomNotInBranch, room.RoomNumber, room.BranchID)
			}
		}

		for _, room := range rooms {
			conflict, err := s.hasConflict(tx, room.ID, in.CheckIn, in.CheckOut)
			if err != nil {
				return err
			}
			if conflict {
				return fmt.Errorf("%w: room %s", ErrRoomConflict, room.RoomNumber)
			}
		}

		booking = models.Booking{
			BranchID:      in.BranchID,
			GuestID:       in.GuestID,
			ReferenceCode: utils.NewBookingReference(),
			Status:        models.BookingStatusConfirmed,
			CheckIn:       in.CheckIn,
			CheckOut:      in.CheckOut,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		for _, room := range rooms {
			br := models.BookingRoom{
				BookingID: booking.ID,
				RoomID:    room.ID,
				Nights:    nights,
			}
			if err := tx.Create(&br).Error; err != nil {
				return fmt.Errorf("failed to attach room %s: %w", room.RoomNumber, err)
			}

			if err := tx.Model(&models.Room{}).
				Where("id = ?", room.ID).
				Update("status", models.RoomStatusReserved).Error; err != nil {
				return fmt.Errorf("failed to update room %s status: %w", room.RoomNumber, err)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Audit.Record(in.StaffID, "booking", booking.ID, "create",
		map[string]interface{}{"reference": booking.ReferenceCode, "rooms": roomIDs})

	if err := s.DB.Preload("Guest").Preload("Rooms.Room.RoomType").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// CheckIn moves a confirmed booking to checked_in and its rooms to occupied.
func (s *BookingService) CheckIn(bookingID, staffID uint) (*models.Booking, error) {
	return s.transition(bookingID, staffID, models.BookingStatusConfirmed, models.BookingStatusCheckedIn, models.RoomStatusOccupied)
}

// CheckOut moves a checked-in booking to checked_out and releases its rooms.
func (s *BookingService) CheckOut(bookingID, staffID uint) (*models.Booking, error) {
	return s.transition(bookingID, staffID, models.BookingStatusCheckedIn, models.BookingStatusCheckedOut, models.RoomStatusAvailable)
}

// Cancel voids a confirmed booking and releases its rooms. Checked-in stays
// cannot be cancelled, only checked out.
func (s *BookingService) Cancel(bookingID, staffID uint) (*models.Booking, error) {
	return s.transition(bookingID, staffID, models.BookingStatusConfirmed, models.BookingStatusCancelled, models.RoomStatusAvailable)
}

func (s *BookingService) transition(bookingID, staffID uint, from, to, roomStatus string) (*models.Booking, error) {
	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Preload("Rooms").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
			}
			return err
		}

		if booking.Status != from {
			return fmt.Errorf("%w: booking %d is %s, expected %s", ErrInvalidTransition, bookingID, booking.Status, from)
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{"status": to}
		switch to {
		case models.BookingStatusCheckedIn:
			updates["checked_in_at"] = now
		case models.BookingStatusCheckedOut:
			updates["checked_out_at"] = now
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}

		for _, br := range booking.Rooms {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", br.RoomID).
				Update("status", roomStatus).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Audit.Record(staffID, "booking", bookingID, to, nil)

	if err := s.DB.Preload("Guest").Preload("Rooms.Room").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookingDetails loads a booking with its guest and rooms.
func (s *BookingService) GetBookingDetails(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").Preload("Rooms.Room.RoomType").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// ListBookings returns a branch's bookings, newest first.
func (s *BookingService) ListBookings(branchID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Guest").
		Preload("Rooms.Room").
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		if list[i].Rooms == nil {
			list[i].Rooms = []models.BookingRoom{}
		}
	}
	return list, nil
}
