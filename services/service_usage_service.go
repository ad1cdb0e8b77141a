package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelms-backend/models"

	"gorm.io/gorm"
)

// ServiceUsageService manages the service catalogue and records usage
// against bookings.
type ServiceUsageService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewServiceUsageService(db *gorm.DB, audit *AuditService) *ServiceUsageService {
	return &ServiceUsageService{DB: db, Audit: audit}
}

// Catalogue

func (s *ServiceUsageService) CreateService(svc *models.HotelService, staffID uint) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if svc.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price cannot be negative", ErrInvalidAmount)
	}
	if err := s.DB.Create(svc).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	s.Audit.Record(staffID, "service", svc.ID, "create", map[string]interface{}{"name": svc.Name})
	return nil
}

func (s *ServiceUsageService) ListServices(branchID uint) ([]models.HotelService, error) {
	var services []models.HotelService
	if err := s.DB.Where("branch_id = ?", branchID).Order("name ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *ServiceUsageService) UpdateService(id uint, updates map[string]interface{}, staffID uint) (*models.HotelService, error) {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "branch_id")

	var svc models.HotelService
	if err := s.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, id)
		}
		return nil, err
	}
	if err := s.DB.Model(&svc).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update service %d: %w", id, err)
	}

	s.Audit.Record(staffID, "service", id, "update", updates)

	if err := s.DB.First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *ServiceUsageService) DeleteService(id uint, staffID uint) error {
	if err := s.DB.Delete(&models.HotelService{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete service %d: %w", id, err)
	}
	s.Audit.Record(staffID, "service", id, "delete", nil)
	return nil
}

// RecordUsage charges a service against a checked-in booking. The catalogue
// price is copied into the usage row at this moment; later price edits never
// touch it, so historical bills stay stable.
func (s *ServiceUsageService) RecordUsage(bookingID, serviceID uint, quantity int, staffID uint) (*models.ServiceUsage, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidAmount)
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("db error checking booking %d: %w", bookingID, err)
	}
	if booking.Status != models.BookingStatusCheckedIn {
		return nil, fmt.Errorf("%w: booking %d is %s", ErrNotCheckedIn, bookingID, booking.Status)
	}

	var svc models.HotelService
	if err := s.DB.First(&svc, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, serviceID)
		}
		return nil, fmt.Errorf("db error checking service %d: %w", serviceID, err)
	}

	usage := models.ServiceUsage{
		BookingID:    bookingID,
		ServiceID:    serviceID,
		Quantity:     quantity,
		PriceAtUsage: svc.UnitPrice,
	}
	if err := s.DB.Create(&usage).Error; err != nil {
		return nil, fmt.Errorf("failed to record usage: %w", err)
	}

	s.Audit.Record(staffID, "service_usage", usage.ID, "record",
		map[string]interface{}{"booking_id": bookingID, "service_id": serviceID, "quantity": quantity})

	return &usage, nil
}

func (s *ServiceUsageService) ListUsage(bookingID uint) ([]models.ServiceUsage, error) {
	var usages []models.ServiceUsage
	if err := s.DB.Preload("Service").
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&usages).Error; err != nil {
		return nil, fmt.Errorf("failed to list usage: %w", err)
	}
	return usages, nil
}
