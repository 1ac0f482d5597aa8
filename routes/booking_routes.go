package routes

import (
	"github.com/fauzanakmal/travel_agency/handlers"
	"github.com/fauzanakmal/travel_agency/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/:bookingId", handlers.GetBooking)

	booking.Get("/:bookingId/payment-summary", handlers.GetPaymentSummary)
	booking.Post("/:bookingId/payments", handlers.SubmitPayment)

	booking.Get("/:bookingId/invoice", handlers.GetInvoice)
	booking.Post("/:bookingId/invoice/pdf", handlers.GenerateInvoicePDF)
}
