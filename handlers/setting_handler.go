package handlers

import (
	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/gofiber/fiber/v2"
)

func GetSettings(c *fiber.Ctx) error {
	var setting models.Setting
	if err := database.DB.First(&setting).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Settings not found"})
	}
	return c.JSON(setting)
}

type UpdateSettingsRequest struct {
	CompanyName       string  `json:"company_name" validate:"required,min=2"`
	Tagline           *string `json:"tagline,omitempty"`
	LogoURL           *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Address           *string `json:"address,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankAccountHolder *string `json:"bank_account_holder,omitempty"`
}

func UpdateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var setting models.Setting
	if err := database.DB.First(&setting).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Settings not found"})
	}

	setting.CompanyName = req.CompanyName
	setting.Tagline = req.Tagline
	setting.LogoURL = req.LogoURL
	setting.Address = req.Address
	setting.Phone = req.Phone
	setting.Email = req.Email
	setting.BankName = req.BankName
	setting.BankAccountNumber = req.BankAccountNumber
	setting.BankAccountHolder = req.BankAccountHolder

	if err := database.DB.Save(&setting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update settings"})
	}
	return c.JSON(setting)
}
