package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingPilgrim struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null" json:"booking_id"`

	Name   string `gorm:"size:255;not null" json:"name"`
	Gender string `gorm:"size:10;not null" json:"gender"`

	Phone          *string    `gorm:"size:20" json:"phone"`
	PassportNumber *string    `gorm:"size:50" json:"passport_number"`
	BirthDate      *time.Time `json:"birth_date"`
	Address        *string    `gorm:"type:text" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
