package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelms-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var knownRoles = map[string]bool{
	models.RoleAdmin:        true,
	models.RoleManager:      true,
	models.RoleReceptionist: true,
}

// StaffService manages staff accounts and verifies credentials at login.
type StaffService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewStaffService(db *gorm.DB, audit *AuditService) *StaffService {
	return &StaffService{DB: db, Audit: audit}
}

// Authenticate verifies a username/password pair and returns the staff
// record. Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *StaffService) Authenticate(username, password string) (*models.Staff, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrInvalidInput)
	}

	var staff models.Staff
	if err := s.DB.Where("username = ?", username).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("db error looking up staff: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &staff, nil
}

type CreateStaffInput struct {
	BranchID uint   `json:"branch_id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *StaffService) Create(in CreateStaffInput, actorID uint) (*models.Staff, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrInvalidInput)
	}
	if !knownRoles[in.Role] {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}

	var branch models.Branch
	if err := s.DB.First(&branch, in.BranchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: branch %d", ErrBranchNotFound, in.BranchID)
		}
		return nil, fmt.Errorf("db error checking branch: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := models.Staff{
		BranchID: in.BranchID,
		FullName: strings.TrimSpace(in.FullName),
		Username: in.Username,
		Password: string(hash),
		Role:     in.Role,
	}
	if err := s.DB.Create(&staff).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return nil, fmt.Errorf("%w: username %s", ErrDuplicate, in.Username)
		}
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	s.Audit.Record(actorID, "staff", staff.ID, "create", map[string]interface{}{"username": staff.Username, "role": staff.Role})
	return &staff, nil
}

func (s *StaffService) ListByBranch(branchID uint) ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Where("branch_id = ?", branchID).Order("full_name ASC").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) Delete(id uint, actorID uint) error {
	var staff models.Staff
	if err := s.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: staff %d", ErrStaffNotFound, id)
		}
		return err
	}
	if err := s.DB.Delete(&staff).Error; err != nil {
		return fmt.Errorf("failed to delete staff %d: %w", id, err)
	}
	s.Audit.Record(actorID, "staff", id, "delete", nil)
	return nil
}

// Branches

func (s *StaffService) CreateBranch(branch *models.Branch, actorID uint) error {
	branch.Name = strings.TrimSpace(branch.Name)
	if branch.Name == "" {
		return fmt.Errorf("%w: branch name is required", ErrInvalidInput)
	}
	if err := s.DB.Create(branch).Error; err != nil {
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			return fmt.Errorf("%w: branch %s", ErrDuplicate, branch.Name)
		}
		return fmt.Errorf("failed to create branch: %w", err)
	}
	s.Audit.Record(actorID, "branch", branch.ID, "create", map[string]interface{}{"name": branch.Name})
	return nil
}

func (s *StaffService) ListBranches() ([]models.Branch, error) {
	var branches []models.Branch
	if err := s.DB.Order("name ASC").Find(&branches).Error; err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}
