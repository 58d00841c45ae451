package config

import (
	"log"

	"user-service/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds one admin account for development.
// Nothing is written when an admin already exists.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("type = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.User{
		CardID:       "ADMIN001",
		FirstName:    "Admin",
		SecondName:   "User",
		Type:         "admin",
		Status:       1,
		Level:        3,
		DateOfBirth:  "01-01-1990",
		Age:          30,
		MobileNumber: "00000000000",
		MobileBrand:  "Unknown",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user seeded [id=%d]", admin.ID)
	return nil
}
