package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	config "github.com/fauzanakmal/travel_agency/configs"
	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/fauzanakmal/travel_agency/notifications"
	"github.com/fauzanakmal/travel_agency/services"
	"github.com/fauzanakmal/travel_agency/websocket"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxProofSizeBytes = 5 * 1024 * 1024

var allowedProofTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var errPendingPayment = errors.New("a previous payment is still awaiting verification")

// recordPayment inserts the pending payment and advances a draft booking to
// waiting_payment. The pending-payment check runs again here under the
// booking row lock, so two concurrent submissions cannot both pass the
// handler's unlocked fast path.
func recordPayment(tx *gorm.DB, booking *models.Booking, payment *models.Payment) error {
	var locked models.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, "id = ?", booking.ID).Error; err != nil {
		return err
	}

	var pending int64
	if err := tx.Model(&models.Payment{}).
		Where("booking_id = ? AND status = ?", booking.ID, "pending").
		Count(&pending).Error; err != nil {
		return err
	}
	if pending > 0 {
		return errPendingPayment
	}

	if err := tx.Create(payment).Error; err != nil {
		return err
	}

	if locked.Status == "draft" {
		locked.Status = "waiting_payment"
		locked.ExpiresAt = nil
		if err := tx.Save(&locked).Error; err != nil {
			return err
		}
		booking.Status = locked.Status
		booking.ExpiresAt = nil
	}
	return nil
}

func GetPaymentSummary(c *fiber.Ctx) error {
	booking, err := loadOwnedBooking(c, "Package", "Departure", "Payments")
	if booking == nil {
		return err
	}

	amounts := services.SummarizePayments(booking.TotalPrice, booking.Payments)
	options := services.BuildPaymentOptions(amounts, booking.Package.MinimumDP)
	deadlines := services.ComputePaymentDeadlines(
		booking.Departure.DepartureDate,
		booking.Package.DPDeadlineDays,
		booking.Package.FullDeadlineDays,
		time.Now(),
	)

	return c.JSON(fiber.Map{
		"booking_id":     booking.ID,
		"booking_code":   booking.Code,
		"booking_status": booking.Status,
		"total_price":    booking.TotalPrice,
		"amounts":        amounts,
		"options":        options,
		"deadlines":      deadlines,
		"has_pending":    services.HasPendingPayment(booking.Payments),
	})
}

func SubmitPayment(c *fiber.Ctx) error {
	booking, err := loadOwnedBooking(c, "Package", "Payments")
	if booking == nil {
		return err
	}

	if booking.Status != "draft" && booking.Status != "waiting_payment" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This booking can no longer accept payments"})
	}
	if services.HasPendingPayment(booking.Payments) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A previous payment is still awaiting verification"})
	}

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A positive payment amount is required"})
	}

	amounts := services.SummarizePayments(booking.TotalPrice, booking.Payments)
	if amounts.Remaining <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This booking is already fully paid"})
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A transfer proof image is required"})
	}
	if fileHeader.Size > maxProofSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Proof image must be 5MB or smaller"})
	}
	if !allowedProofTypes[fileHeader.Header.Get("Content-Type")] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Proof image must be JPEG, PNG, or WebP"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer file.Close()

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize upload client"})
	}

	uploadCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	uploadResult, err := cld.Upload.Upload(uploadCtx, file, uploader.UploadParams{
		PublicID: fmt.Sprintf("proofs/%s_%s", booking.Code, uuid.New().String()),
		Folder:   "travel_agency_payment_proofs",
	})
	if err != nil {
		log.Printf("🔥 Proof upload failed for booking %s: %v", booking.Code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload proof image"})
	}

	paymentType := services.ClassifyPaymentType(amount, amounts)

	payment := models.Payment{
		BookingID:   booking.ID,
		Amount:      amount,
		PaymentType: paymentType,
		Status:      "pending",
		ProofURL:    &uploadResult.SecureURL,
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return recordPayment(tx, booking, &payment)
	})
	if err != nil {
		if errors.Is(err, errPendingPayment) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A previous payment is still awaiting verification"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	go func() {
		var owner models.User
		if err := database.DB.First(&owner, "id = ?", booking.UserID).Error; err == nil {
			notifications.SendEmail(owner.FullName, owner.Email, "Payment Received",
				"<h1>Payment Received</h1><p>We received your payment submission for booking "+booking.Code+". Our team will verify it shortly.</p>")
		}
	}()
	websocket.NotifyBookingEvent(websocket.BookingEvent{
		BookingID:   booking.ID,
		BookingCode: booking.Code,
		OwnerID:     booking.UserID,
		Status:      booking.Status,
		Event:       "payment_submitted",
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Payment submitted and awaiting verification.",
		"payment": payment,
	})
}

func ListPendingPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	database.DB.
		Preload("Booking.User").
		Preload("Booking.Package").
		Where("status = ?", "pending").
		Order("created_at asc").
		Find(&payments)
	return c.JSON(payments)
}

type VerifyPaymentRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Note     string `json:"note"`
}

func VerifyPayment(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	if _, err := uuid.Parse(paymentID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID format"})
	}

	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var payment models.Payment
	if err := database.DB.Preload("Booking.User").First(&payment, "id = ?", paymentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	if payment.Status != "pending" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending payments can be verified"})
	}

	booking := payment.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		payment.VerifiedAt = &now
		if req.Note != "" {
			payment.AdminNote = &req.Note
		}

		if req.Decision == "approve" {
			payment.Status = "paid"
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}

			var paidTotal float64
			if err := tx.Model(&models.Payment{}).
				Where("booking_id = ? AND status = ?", booking.ID, "paid").
				Select("coalesce(sum(amount), 0)").
				Scan(&paidTotal).Error; err != nil {
				return err
			}
			if paidTotal >= booking.TotalPrice {
				booking.Status = "paid"
				if err := tx.Save(&booking).Error; err != nil {
					return err
				}
			}
			return nil
		}

		payment.Status = "failed"
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		booking.Status = "cancelled"
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		// Cancelled bookings give their seats back.
		if err := tx.Model(&models.Departure{}).
			Where("id = ?", booking.DepartureID).
			Update("remaining_quota", gorm.Expr("remaining_quota + ?", booking.TotalPilgrims)).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify payment"})
	}

	owner := booking.User
	if req.Decision == "approve" {
		go notifications.SendEmail(owner.FullName, owner.Email, "Payment Verified",
			fmt.Sprintf("<h1>Payment Verified</h1><p>Your payment of Rp %.0f for booking %s has been verified. Thank you!</p>", payment.Amount, booking.Code))
	} else {
		go notifications.SendEmail(owner.FullName, owner.Email, "Payment Rejected",
			fmt.Sprintf("<h1>Payment Rejected</h1><p>Your payment for booking %s was rejected and the booking has been cancelled.</p><p><b>Note:</b> %s</p>", booking.Code, req.Note))
	}
	websocket.NotifyBookingEvent(websocket.BookingEvent{
		BookingID:   booking.ID,
		BookingCode: booking.Code,
		OwnerID:     booking.UserID,
		Status:      booking.Status,
		Event:       "payment_" + payment.Status,
	})

	return c.JSON(fiber.Map{"message": "Payment verification processed.", "payment": payment})
}
