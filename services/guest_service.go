package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelms-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewGuestService(db *gorm.DB, audit *AuditService) *GuestService {
	return &GuestService{DB: db, Audit: audit}
}

func (s *GuestService) Create(guest *models.Guest, staffID uint) error {
	guest.FullName = strings.TrimSpace(guest.FullName)
	if guest.FullName == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	s.Audit.Record(staffID, "guest", guest.ID, "create", map[string]interface{}{"fullName": guest.FullName})
	return nil
}

// List returns the branch's guests, optionally filtered by a name/document
// search term.
func (s *GuestService) List(branchID uint, search string) ([]models.Guest, error) {
	q := s.DB.Where("branch_id = ?", branchID)
	if term := strings.TrimSpace(search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(id_number) LIKE ?", like, like)
	}

	var guests []models.Guest
	if err := q.Order("full_name ASC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: guest %d", ErrGuestNotFound, id)
		}
		return nil, err
	}
	return &guest, nil
}

func (s *GuestService) Update(id uint, updates map[string]interface{}, staffID uint) (*models.Guest, error) {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "branch_id")

	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(guest).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update guest %d: %w", id, err)
	}

	s.Audit.Record(staffID, "guest", id, "update", updates)
	return s.GetByID(id)
}

func (s *GuestService) Delete(id uint, staffID uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Guest{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete guest %d: %w", id, err)
	}
	s.Audit.Record(staffID, "guest", id, "delete", nil)
	return nil
}
