package models

import "github.com/google/uuid"

type Airline struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Code    string    `gorm:"size:10;unique" json:"code"`
	LogoURL *string   `gorm:"size:255" json:"logo_url"`
}
