package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null" json:"booking_id"`

	Amount      float64 `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaymentType string  `gorm:"size:20;not null" json:"payment_type"`
	Status      string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	ProofURL   *string    `gorm:"size:255" json:"proof_url"`
	VerifiedAt *time.Time `json:"verified_at"`
	AdminNote  *string    `gorm:"type:text" json:"admin_note"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
