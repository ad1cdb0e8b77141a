package services

import (
	"encoding/json"
	"log"

	"hotelms-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService writes attribution records for create/update/delete
// operations. Writes are best-effort: failures are logged and swallowed so
// they never abort the primary operation.
type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

func (s *AuditService) Record(staffID uint, entityType string, entityID uint, description string, details interface{}) {
	entry := models.AuditLog{
		StaffID:     staffID,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = datatypes.JSON(raw)
		}
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("warning: audit write failed (%s %s #%d): %v", description, entityType, entityID, err)
	}
}
