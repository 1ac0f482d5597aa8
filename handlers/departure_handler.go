package handlers

import (
	"time"

	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeparturePriceRequest struct {
	RoomType string  `json:"room_type" validate:"required,oneof=quad triple double single"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

type DepartureRequest struct {
	PackageID     string                  `json:"package_id" validate:"required,uuid"`
	DepartureDate string                  `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string                  `json:"return_date" validate:"required,datetime=2006-01-02"`
	Quota         int                     `json:"quota" validate:"required,gt=0"`
	Status        string                  `json:"status" validate:"omitempty,oneof=open closed departed"`
	Prices        []DeparturePriceRequest `json:"prices" validate:"required,min=1,dive"`
}

func CreateDeparture(c *fiber.Ctx) error {
	var req DepartureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	packageID, _ := uuid.Parse(req.PackageID)
	var pkg models.Package
	if err := database.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	departureDate, _ := time.Parse("2006-01-02", req.DepartureDate)
	returnDate, _ := time.Parse("2006-01-02", req.ReturnDate)
	if !returnDate.After(departureDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Return date must be after the departure date"})
	}

	status := req.Status
	if status == "" {
		status = "open"
	}

	var departure models.Departure
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		departure = models.Departure{
			PackageID:      packageID,
			DepartureDate:  departureDate,
			ReturnDate:     returnDate,
			Quota:          req.Quota,
			RemainingQuota: req.Quota,
			Status:         status,
		}
		if err := tx.Create(&departure).Error; err != nil {
			return err
		}

		for _, price := range req.Prices {
			row := models.DeparturePrice{
				DepartureID: departure.ID,
				RoomType:    price.RoomType,
				Price:       price.Price,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create departure"})
	}

	database.DB.Preload("Prices").First(&departure, "id = ?", departure.ID)
	return c.Status(fiber.StatusCreated).JSON(departure)
}

type UpdateDepartureRequest struct {
	DepartureDate *string                 `json:"departure_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate    *string                 `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Quota         *int                    `json:"quota,omitempty" validate:"omitempty,gt=0"`
	Status        *string                 `json:"status,omitempty" validate:"omitempty,oneof=open closed departed"`
	Prices        []DeparturePriceRequest `json:"prices,omitempty" validate:"omitempty,min=1,dive"`
}

func UpdateDeparture(c *fiber.Ctx) error {
	departureID := c.Params("departureId")

	var req UpdateDepartureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var departure models.Departure
	if err := database.DB.First(&departure, "id = ?", departureID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Departure not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.DepartureDate != nil {
			if departureDate, err := time.Parse("2006-01-02", *req.DepartureDate); err == nil {
				departure.DepartureDate = departureDate
			}
		}
		if req.ReturnDate != nil {
			if returnDate, err := time.Parse("2006-01-02", *req.ReturnDate); err == nil {
				departure.ReturnDate = returnDate
			}
		}
		if req.Quota != nil {
			// Resize the pool while keeping already-sold seats sold.
			sold := departure.Quota - departure.RemainingQuota
			if *req.Quota < sold {
				return fiber.NewError(fiber.StatusBadRequest, "Quota cannot drop below the seats already booked")
			}
			departure.Quota = *req.Quota
			departure.RemainingQuota = *req.Quota - sold
		}
		if req.Status != nil {
			departure.Status = *req.Status
		}
		if err := tx.Save(&departure).Error; err != nil {
			return err
		}

		if len(req.Prices) > 0 {
			if err := tx.Where("departure_id = ?", departure.ID).Delete(&models.DeparturePrice{}).Error; err != nil {
				return err
			}
			for _, price := range req.Prices {
				row := models.DeparturePrice{
					DepartureID: departure.ID,
					RoomType:    price.RoomType,
					Price:       price.Price,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update departure"})
	}

	database.DB.Preload("Prices").First(&departure, "id = ?", departure.ID)
	return c.JSON(departure)
}

func DeleteDeparture(c *fiber.Ctx) error {
	departureID := c.Params("departureId")

	var count int64
	database.DB.Model(&models.Booking{}).Where("departure_id = ?", departureID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Departures with bookings cannot be deleted; close them instead"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("departure_id = ?", departureID).Delete(&models.DeparturePrice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Departure{}, "id = ?", departureID).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete departure"})
	}
	return c.JSON(fiber.Map{"message": "Departure deleted successfully"})
}
