package database

import (
	"fmt"
	"log"

	config "github.com/fauzanakmal/travel_agency/configs"
	"github.com/fauzanakmal/travel_agency/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Hotel{},
		&models.Airline{},
		&models.Airport{},
		&models.Package{},
		&models.Departure{},
		&models.DeparturePrice{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.BookingPilgrim{},
		&models.Payment{},
		&models.Page{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedSettings guarantees the branding singleton the invoice renders from.
func SeedSettings() {
	var count int64
	if err := DB.Model(&models.Setting{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for settings row: %v", err)
		return
	}
	if count > 0 {
		return
	}

	setting := models.Setting{
		CompanyName: config.Config("COMPANY_NAME"),
	}
	if setting.CompanyName == "" {
		setting.CompanyName = "Travel Agency"
	}

	if err := DB.Create(&setting).Error; err != nil {
		log.Fatalf("🔥 Failed to seed settings: %v", err)
		return
	}
	log.Println("✅ Default settings seeded successfully")
}
