package models

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title   string    `gorm:"size:255;not null" json:"title"`
	Slug    string    `gorm:"size:255;not null;unique" json:"slug"`
	Content string    `gorm:"type:text" json:"content"`

	ParentID  *uuid.UUID `json:"parent_id"`
	SortOrder int        `gorm:"not null;default:0" json:"sort_order"`

	IsPublished bool `gorm:"not null;default:false" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
