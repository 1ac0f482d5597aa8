package jobs

import (
	"log"
	"time"

	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/fauzanakmal/travel_agency/notifications"
	"github.com/fauzanakmal/travel_agency/websocket"
	"gorm.io/gorm"
)

// SweepExpiredDrafts cancels draft bookings past their TTL and gives their
// seats back, so abandoned wizards do not hold quota forever.
func SweepExpiredDrafts() {
	var expired []models.Booking
	err := database.DB.
		Preload("User").
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", "draft", time.Now()).
		Find(&expired).Error
	if err != nil {
		log.Printf("Error checking for expired draft bookings: %v", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	for _, booking := range expired {
		var cancelled bool
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			// The status guard can lose the race against a payment
			// submission; only a matched row may give seats back.
			result := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", booking.ID, "draft").
				Update("status", "cancelled")
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return nil
			}
			cancelled = true
			return tx.Model(&models.Departure{}).
				Where("id = ?", booking.DepartureID).
				Update("remaining_quota", gorm.Expr("remaining_quota + ?", booking.TotalPilgrims)).Error
		})
		if err != nil {
			log.Printf("🔥 Failed to expire draft booking %s: %v", booking.Code, err)
			continue
		}
		if !cancelled {
			continue
		}

		log.Printf("Expired draft booking %s, restored %d seats", booking.Code, booking.TotalPilgrims)
		go notifications.SendEmail(booking.User.FullName, booking.User.Email, "Your Booking Has Expired",
			"<h1>Booking Expired</h1><p>Your booking "+booking.Code+" was cancelled because no payment was received in time. The seats have been released.</p>")
		websocket.NotifyBookingEvent(websocket.BookingEvent{
			BookingID:   booking.ID,
			BookingCode: booking.Code,
			OwnerID:     booking.UserID,
			Status:      "cancelled",
			Event:       "booking_expired",
		})
	}
}
