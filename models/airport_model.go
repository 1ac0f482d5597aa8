package models

import "github.com/google/uuid"

type Airport struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"size:255;not null" json:"name"`
	City string    `gorm:"size:100" json:"city"`
	Code string    `gorm:"size:10;unique" json:"code"`
}
