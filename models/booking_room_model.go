package models

import "github.com/google/uuid"

type BookingRoom struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null" json:"booking_id"`

	RoomType string  `gorm:"size:10;not null" json:"room_type"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:numeric(14,2);not null" json:"price"`

	// quantity x price x occupancy multiplier.
	Subtotal float64 `gorm:"type:numeric(14,2);not null" json:"subtotal"`
}
