package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents the user table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CardID       string    `gorm:"size:50;not null" json:"card_id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	SecondName   string    `gorm:"size:100;not null" json:"second_name"`
	Type         string    `gorm:"size:20;not null" json:"type"`
	Status       int       `gorm:"not null" json:"status"`
	Level        int       `gorm:"not null" json:"level"`
	DateOfBirth  string    `gorm:"size:10;not null" json:"date_of_birth"`
	Age          int       `gorm:"not null" json:"age"`
	MobileNumber string    `gorm:"size:20" json:"mobile_number"`
	MobileBrand  string    `gorm:"size:50" json:"mobile_brand"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
	)
}
