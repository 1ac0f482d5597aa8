package models

import (
	"time"

	"github.com/google/uuid"
)

type Departure struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PackageID uuid.UUID `gorm:"not null" json:"package_id"`

	DepartureDate time.Time `gorm:"not null" json:"departure_date"`
	ReturnDate    time.Time `gorm:"not null" json:"return_date"`

	// remaining_quota <= quota; both only move inside booking transactions.
	Quota          int `gorm:"not null" json:"quota"`
	RemainingQuota int `gorm:"not null" json:"remaining_quota"`

	Status string `gorm:"size:20;not null;default:'open'" json:"status"`

	Package Package          `gorm:"foreignkey:PackageID" json:"package,omitempty"`
	Prices  []DeparturePrice `gorm:"foreignkey:DepartureID" json:"prices,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
