package models

import "github.com/google/uuid"

type Hotel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name   string    `gorm:"size:255;not null" json:"name"`
	City   string    `gorm:"size:100" json:"city"`
	Rating int       `gorm:"not null;default:3" json:"rating"`
}
