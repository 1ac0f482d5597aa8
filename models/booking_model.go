package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code        string    `gorm:"size:20;not null;unique" json:"code"`
	UserID      uuid.UUID `gorm:"not null" json:"user_id"`
	PackageID   uuid.UUID `gorm:"not null" json:"package_id"`
	DepartureID uuid.UUID `gorm:"not null" json:"departure_id"`

	Status string `gorm:"size:20;not null;default:'draft'" json:"status"`

	// Snapshots taken once at creation from the selected rooms.
	TotalPrice    float64 `gorm:"type:numeric(14,2);not null" json:"total_price"`
	TotalPilgrims int     `gorm:"not null" json:"total_pilgrims"`

	// Draft bookings past this point are swept and their quota restored.
	ExpiresAt *time.Time `json:"expires_at"`

	User      User      `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Package   Package   `gorm:"foreignkey:PackageID" json:"package,omitempty"`
	Departure Departure `gorm:"foreignkey:DepartureID" json:"departure,omitempty"`

	Rooms    []BookingRoom    `gorm:"foreignkey:BookingID" json:"rooms,omitempty"`
	Pilgrims []BookingPilgrim `gorm:"foreignkey:BookingID" json:"pilgrims,omitempty"`
	Payments []Payment        `gorm:"foreignkey:BookingID" json:"payments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
