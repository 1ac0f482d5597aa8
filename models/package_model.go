package models

import (
	"time"

	"github.com/google/uuid"
)

type Package struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Slug         string    `gorm:"size:255;not null;unique" json:"slug"`
	Description  string    `gorm:"type:text" json:"description"`
	DurationDays int       `gorm:"not null;default:9" json:"duration_days"`
	ImageURL     *string   `gorm:"size:255" json:"image_url"`

	// Deposit and deadline policy used by the payment workflow.
	MinimumDP        float64 `gorm:"type:numeric(14,2);not null;default:0.00" json:"minimum_dp"`
	DPDeadlineDays   int     `gorm:"not null;default:30" json:"dp_deadline_days"`
	FullDeadlineDays int     `gorm:"not null;default:7" json:"full_deadline_days"`

	CategoryID *uuid.UUID `json:"category_id"`
	HotelID    *uuid.UUID `json:"hotel_id"`
	AirlineID  *uuid.UUID `json:"airline_id"`
	AirportID  *uuid.UUID `json:"airport_id"`

	IsPublished bool `gorm:"not null;default:false" json:"is_published"`

	Category   Category    `gorm:"foreignkey:CategoryID" json:"category,omitempty"`
	Hotel      Hotel       `gorm:"foreignkey:HotelID" json:"hotel,omitempty"`
	Airline    Airline     `gorm:"foreignkey:AirlineID" json:"airline,omitempty"`
	Airport    Airport     `gorm:"foreignkey:AirportID" json:"airport,omitempty"`
	Departures []Departure `gorm:"foreignkey:PackageID" json:"departures,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
