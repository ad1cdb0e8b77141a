package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotelms-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotelms")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate runs AutoMigrate in parent->child order. Shared with the test
// helper so tests migrate the exact schema the server runs on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Branch{},
		&models.Staff{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.HotelService{},
		&models.ServiceUsage{},
		&models.Bill{},
		&models.Payment{},
		&models.AuditLog{},
	)
}

// SeedDatabase is idempotent: every block checks before inserting.
func SeedDatabase(db *gorm.DB) {
	var branchCount int64
	db.Model(&models.Branch{}).Count(&branchCount)
	if branchCount == 0 {
		branches := []models.Branch{
			{Name: "Downtown", Address: "1 Main Street", Phone: "+1-555-0100"},
			{Name: "Airport", Address: "99 Runway Road", Phone: "+1-555-0200"},
		}
		if err := db.Create(&branches).Error; err != nil {
			log.Printf("warning: failed to seed branches: %v", err)
		} else {
			log.Println("Branches seeded")
		}
	}

	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "Standard Room", NightlyRate: 9500, MaxGuests: 2},
			{TypeName: "Superior", Description: "Superior Room", NightlyRate: 14000, MaxGuests: 3},
			{TypeName: "Deluxe", Description: "Deluxe Room", NightlyRate: 18500, MaxGuests: 4},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}

	var svcCount int64
	db.Model(&models.HotelService{}).Count(&svcCount)
	if svcCount == 0 {
		var branch models.Branch
		if err := db.First(&branch).Error; err == nil {
			services := []models.HotelService{
				{BranchID: branch.ID, Name: "Laundry", UnitPrice: 350},
				{BranchID: branch.ID, Name: "Minibar", UnitPrice: 500},
				{BranchID: branch.ID, Name: "Airport Transfer", UnitPrice: 3500},
			}
			if err := db.Create(&services).Error; err != nil {
				log.Printf("warning: failed to seed services: %v", err)
			} else {
				log.Println("Service catalogue seeded")
			}
		}
	}

	var staffCount int64
	db.Model(&models.Staff{}).Count(&staffCount)
	if staffCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
			return
		}
		var branch models.Branch
		if err := db.First(&branch).Error; err != nil {
			log.Printf("warning: no branch to attach default admin to: %v", err)
			return
		}
		admin := models.Staff{
			BranchID: branch.ID,
			FullName: "System Admin",
			Username: "admin@hotel.local",
			Password: string(hash),
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}
