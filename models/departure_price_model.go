package models

import "github.com/google/uuid"

type DeparturePrice struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DepartureID uuid.UUID `gorm:"not null;uniqueIndex:idx_departure_room_type" json:"departure_id"`
	RoomType    string    `gorm:"size:10;not null;uniqueIndex:idx_departure_room_type" json:"room_type"`

	// Price per occupant for this room type.
	Price float64 `gorm:"type:numeric(14,2);not null" json:"price"`
}
