package models

import (
	"time"

	"github.com/google/uuid"
)

// Setting is the single branding row shown on the site and on invoices.
type Setting struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name"`
	Tagline     *string   `gorm:"size:255" json:"tagline"`
	LogoURL     *string   `gorm:"size:255" json:"logo_url"`

	Address *string `gorm:"type:text" json:"address"`
	Phone   *string `gorm:"size:20" json:"phone"`
	Email   *string `gorm:"size:255" json:"email"`

	BankName          *string `gorm:"size:100" json:"bank_name"`
	BankAccountNumber *string `gorm:"size:50" json:"bank_account_number"`
	BankAccountHolder *string `gorm:"size:255" json:"bank_account_holder"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
