package services

import (
	"testing"
	"time"

	"hotelms-backend/config"
	"hotelms-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database restricted to a single connection,
// so every query — including concurrent transactions — serializes through
// one writer, the way the production row locks serialize MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

type fixtures struct {
	BranchA models.Branch
	BranchB models.Branch

	Deluxe   models.RoomType
	Standard models.RoomType

	Room101 models.Room // branch A, deluxe
	Room102 models.Room // branch A, standard
	Room201 models.Room // branch B, deluxe

	Guest models.Guest
	Staff models.Staff

	Spa models.HotelService
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		BranchA:  models.Branch{Name: "Downtown"},
		BranchB:  models.Branch{Name: "Airport"},
		Deluxe:   models.RoomType{TypeName: "Deluxe", NightlyRate: 18500, MaxGuests: 4},
		Standard: models.RoomType{TypeName: "Standard", NightlyRate: 9500, MaxGuests: 2},
	}
	require.NoError(t, db.Create(&f.BranchA).Error)
	require.NoError(t, db.Create(&f.BranchB).Error)
	require.NoError(t, db.Create(&f.Deluxe).Error)
	require.NoError(t, db.Create(&f.Standard).Error)

	f.Room101 = models.Room{BranchID: f.BranchA.ID, RoomTypeID: f.Deluxe.ID, RoomNumber: "101", Status: models.RoomStatusAvailable}
	f.Room102 = models.Room{BranchID: f.BranchA.ID, RoomTypeID: f.Standard.ID, RoomNumber: "102", Status: models.RoomStatusAvailable}
	f.Room201 = models.Room{BranchID: f.BranchB.ID, RoomTypeID: f.Deluxe.ID, RoomNumber: "201", Status: models.RoomStatusAvailable}
	require.NoError(t, db.Create(&f.Room101).Error)
	require.NoError(t, db.Create(&f.Room102).Error)
	require.NoError(t, db.Create(&f.Room201).Error)

	f.Guest = models.Guest{BranchID: f.BranchA.ID, FullName: "Arun Chai", Email: "arun@example.com"}
	require.NoError(t, db.Create(&f.Guest).Error)

	f.Staff = models.Staff{BranchID: f.BranchA.ID, FullName: "Reception One", Username: "reception@hotel.local", Role: models.RoleReceptionist}
	require.NoError(t, db.Create(&f.Staff).Error)

	f.Spa = models.HotelService{BranchID: f.BranchA.ID, Name: "Spa", UnitPrice: 3500}
	require.NoError(t, db.Create(&f.Spa).Error)

	return f
}

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(db, NewAuditService(db))
}

func newBillingService(db *gorm.DB) *BillingService {
	return NewBillingService(db, NewAuditService(db))
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}
