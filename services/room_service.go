package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelms-backend/models"

	"gorm.io/gorm"
)

// Statuses staff may set by hand. Reserved and occupied belong to the
// booking lifecycle and are rejected here.
var manualRoomStatuses = map[string]bool{
	models.RoomStatusAvailable:   true,
	models.RoomStatusMaintenance: true,
	models.RoomStatusOutOfOrder:  true,
}

type RoomService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewRoomService(db *gorm.DB, audit *AuditService) *RoomService {
	return &RoomService{DB: db, Audit: audit}
}

func (s *RoomService) Create(room *models.Room, staffID uint) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: room type %d", ErrRoomTypeNotFound, room.RoomTypeID)
		}
		return fmt.Errorf("db error checking room type: %w", err)
	}

	if err := s.DB.Create(room).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("%w: room number %s", ErrDuplicate, room.RoomNumber)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}

	s.Audit.Record(staffID, "room", room.ID, "create", map[string]interface{}{"roomNumber": room.RoomNumber})
	return nil
}

func (s *RoomService) ListByBranch(branchID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("RoomType").
		Where("branch_id = ?", branchID).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrRoomNotFound, id)
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}, staffID uint) (*models.Room, error) {
	// status has its own endpoint with its own rules
	delete(updates, "id")
	delete(updates, "status")
	delete(updates, "created_at")
	delete(updates, "branch_id")

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}

	s.Audit.Record(staffID, "room", id, "update", updates)
	return s.GetByID(id)
}

// SetStatus applies a manual status override. Lifecycle-owned statuses are
// refused so staff cannot fake a reservation from the rooms screen.
func (s *RoomService) SetStatus(id uint, status string, staffID uint) (*models.Room, error) {
	if !manualRoomStatuses[status] {
		return nil, fmt.Errorf("%w: %s", ErrStatusNotAllowed, status)
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(room).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to set room %d status: %w", id, err)
	}

	s.Audit.Record(staffID, "room", id, "set_status", map[string]interface{}{"status": status})
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint, staffID uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Room{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	s.Audit.Record(staffID, "room", id, "delete", nil)
	return nil
}

// Room types

func (s *RoomService) CreateRoomType(rt *models.RoomType, staffID uint) error {
	if strings.TrimSpace(rt.TypeName) == "" {
		return fmt.Errorf("%w: type name is required", ErrInvalidInput)
	}
	if rt.NightlyRate < 0 {
		return fmt.Errorf("%w: nightly rate cannot be negative", ErrInvalidAmount)
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	s.Audit.Record(staffID, "room_type", rt.ID, "create", map[string]interface{}{"typeName": rt.TypeName})
	return nil
}

func (s *RoomService) ListRoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Order("type_name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return types, nil
}

func (s *RoomService) DeleteRoomType(id uint, staffID uint) error {
	if err := s.DB.Delete(&models.RoomType{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room type %d: %w", id, err)
	}
	s.Audit.Record(staffID, "room_type", id, "delete", nil)
	return nil
}
