package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/fauzanakmal/travel_agency/notifications"
	"github.com/fauzanakmal/travel_agency/services"
)

const reminderWindowDays = 3

// SendPaymentReminders nudges customers whose payment deadline is close.
// Deadlines are informational and never block a late payment.
func SendPaymentReminders() {
	log.Println("Running job: SendPaymentReminders...")

	var waiting []models.Booking
	err := database.DB.
		Preload("User").
		Preload("Package").
		Preload("Departure").
		Preload("Payments").
		Where("status IN ?", []string{"draft", "waiting_payment"}).
		Find(&waiting).Error
	if err != nil {
		log.Printf("Error checking for bookings awaiting payment: %v", err)
		return
	}

	now := time.Now()
	for _, booking := range waiting {
		deadlines := services.ComputePaymentDeadlines(
			booking.Departure.DepartureDate,
			booking.Package.DPDeadlineDays,
			booking.Package.FullDeadlineDays,
			now,
		)
		amounts := services.SummarizePayments(booking.TotalPrice, booking.Payments)
		if amounts.Remaining <= 0 {
			continue
		}

		deadline := deadlines.FullDeadline
		label := "full payment"
		if amounts.Paid == 0 {
			deadline = deadlines.DPDeadline
			label = "down payment"
		}

		daysLeft := int(time.Until(deadline).Hours() / 24)
		if daysLeft < 0 || daysLeft > reminderWindowDays {
			continue
		}

		log.Printf("Sending payment reminder for booking %s", booking.Code)
		emailBody := fmt.Sprintf(
			"<h1>Payment Reminder</h1><p>Hi %s,</p><p>The %s deadline for your booking %s is %s. The remaining amount is Rp %.0f.</p>",
			booking.User.FullName, label, booking.Code, deadline.Format("2 January 2006"), amounts.Remaining,
		)
		go notifications.SendEmail(booking.User.FullName, booking.User.Email, "Payment Reminder", emailBody)
	}
}
