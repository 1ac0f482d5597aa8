package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/fauzanakmal/travel_agency/notifications"
	"github.com/fauzanakmal/travel_agency/services"
	"github.com/fauzanakmal/travel_agency/utils"
	"github.com/fauzanakmal/travel_agency/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Draft bookings hold quota this long before the sweep job releases them.
const draftBookingTTL = 24 * time.Hour

type BookingRoomRequest struct {
	RoomType string `json:"room_type" validate:"required,oneof=quad triple double single"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type BookingPilgrimRequest struct {
	Name           string  `json:"name" validate:"required"`
	Gender         string  `json:"gender" validate:"required,oneof=male female"`
	Phone          *string `json:"phone,omitempty"`
	PassportNumber *string `json:"passport_number,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Address        *string `json:"address,omitempty"`
}

type CreateBookingRequest struct {
	DepartureID string                  `json:"departure_id" validate:"required,uuid"`
	Rooms       []BookingRoomRequest    `json:"rooms" validate:"required,min=1,dive"`
	Pilgrims    []BookingPilgrimRequest `json:"pilgrims" validate:"required,dive"`
}

func CreateBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	departureID, _ := uuid.Parse(req.DepartureID)

	var departure models.Departure
	if err := database.DB.Preload("Prices").Preload("Package").First(&departure, "id = ?", departureID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Departure not found"})
	}
	if departure.Status != "open" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This departure is no longer open for booking"})
	}

	// Prices come from the departure's own price list, never the client.
	priceByRoomType := make(map[string]float64, len(departure.Prices))
	for _, price := range departure.Prices {
		priceByRoomType[price.RoomType] = price.Price
	}

	selections := make([]services.RoomSelection, 0, len(req.Rooms))
	for _, room := range req.Rooms {
		if room.Quantity == 0 {
			continue
		}
		price, ok := priceByRoomType[room.RoomType]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No price is defined for room type " + room.RoomType})
		}
		selections = append(selections, services.RoomSelection{
			RoomType: room.RoomType,
			Quantity: room.Quantity,
			Price:    price,
		})
	}

	totals, err := services.CalculateRoomTotals(selections)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := services.ValidateRoomTotals(totals); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if len(req.Pilgrims) != totals.TotalPilgrims {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "The number of pilgrims must match the selected rooms",
		})
	}
	for _, pilgrim := range req.Pilgrims {
		if pilgrim.Name == "" || pilgrim.Gender == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Every pilgrim needs a name and gender"})
		}
	}

	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&departure, "id = ?", departureID).Error; err != nil {
			return err
		}

		if departure.Status != "open" {
			return errors.New("this departure is no longer open for booking")
		}
		if departure.RemainingQuota < totals.TotalPilgrims {
			return errors.New("not enough seats remaining for this departure")
		}
		departure.RemainingQuota -= totals.TotalPilgrims
		if err := tx.Save(&departure).Error; err != nil {
			return err
		}

		code, err := utils.GenerateUniqueBookingCode(tx)
		if err != nil {
			log.Printf("🔥 Booking code generation failed, using timestamp fallback: %v", err)
			code = utils.FallbackBookingCode(time.Now())
		}

		expiresAt := time.Now().Add(draftBookingTTL)
		booking = models.Booking{
			Code:          code,
			UserID:        userID,
			PackageID:     departure.PackageID,
			DepartureID:   departure.ID,
			Status:        "draft",
			TotalPrice:    totals.TotalPrice,
			TotalPilgrims: totals.TotalPilgrims,
			ExpiresAt:     &expiresAt,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		for _, sel := range selections {
			subtotal, err := services.RoomSubtotal(sel)
			if err != nil {
				return err
			}
			room := models.BookingRoom{
				BookingID: booking.ID,
				RoomType:  sel.RoomType,
				Quantity:  sel.Quantity,
				Price:     sel.Price,
				Subtotal:  subtotal,
			}
			if err := tx.Create(&room).Error; err != nil {
				return err
			}
		}

		for _, p := range req.Pilgrims {
			pilgrim := models.BookingPilgrim{
				BookingID:      booking.ID,
				Name:           p.Name,
				Gender:         p.Gender,
				Phone:          p.Phone,
				PassportNumber: p.PassportNumber,
				Address:        p.Address,
			}
			if p.BirthDate != nil {
				if birthDate, err := time.Parse("2006-01-02", *p.BirthDate); err == nil {
					pilgrim.BirthDate = &birthDate
				}
			}
			if err := tx.Create(&pilgrim).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	go func() {
		var owner models.User
		if err := database.DB.First(&owner, "id = ?", userID).Error; err == nil {
			notifications.SendEmail(owner.FullName, owner.Email, "Your Booking Has Been Created",
				"<h1>Booking Created</h1><p>Your booking "+booking.Code+" has been created. Please complete your payment to secure your seats.</p>")
		}
	}()
	websocket.NotifyBookingEvent(websocket.BookingEvent{
		BookingID:   booking.ID,
		BookingCode: booking.Code,
		OwnerID:     userID,
		Status:      booking.Status,
		Event:       "booking_created",
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully. Please proceed to payment.",
		"booking": booking,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("Package").
		Preload("Departure").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

// loadOwnedBooking enforces the owner-or-admin rule every booking-scoped
// endpoint shares. On failure the response has already been written; the
// caller returns the error value as-is and must not write again.
func loadOwnedBooking(c *fiber.Ctx, preloads ...string) (*models.Booking, error) {
	bookingID := c.Params("bookingId")
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID format"})
	}

	query := database.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var booking models.Booking
	if err := query.First(&booking, "id = ?", bookingID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if booking.UserID != currentUserID(c) && currentUserRole(c) != "admin" {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	return &booking, nil
}

func GetBooking(c *fiber.Ctx) error {
	booking, err := loadOwnedBooking(c, "Package", "Departure.Prices", "Rooms", "Pilgrims", "Payments")
	if booking == nil {
		return err
	}
	return c.JSON(booking)
}
