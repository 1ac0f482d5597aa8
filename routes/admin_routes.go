package routes

import (
	"github.com/fauzanakmal/travel_agency/handlers"
	"github.com/fauzanakmal/travel_agency/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard", handlers.GetDashboardStats)
	admin.Get("/users", handlers.GetAllUsers)
	admin.Get("/bookings", handlers.GetAllBookings)
	admin.Get("/bookings/export", handlers.ExportBookings)

	admin.Get("/payments/pending", handlers.ListPendingPayments)
	admin.Post("/payments/:paymentId/verify", handlers.VerifyPayment)

	admin.Post("/packages", handlers.CreatePackage)
	admin.Put("/packages/:packageId", handlers.UpdatePackage)
	admin.Delete("/packages/:packageId", handlers.DeletePackage)

	admin.Post("/departures", handlers.CreateDeparture)
	admin.Put("/departures/:departureId", handlers.UpdateDeparture)
	admin.Delete("/departures/:departureId", handlers.DeleteDeparture)

	admin.Post("/pages", handlers.CreatePage)
	admin.Put("/pages/:pageId", handlers.UpdatePage)
	admin.Delete("/pages/:pageId", handlers.DeletePage)

	admin.Put("/settings", handlers.UpdateSettings)

	admin.Get("/categories", handlers.ListCategories)
	admin.Post("/categories", handlers.CreateCategory)
	admin.Delete("/categories/:categoryId", handlers.DeleteCategory)

	admin.Get("/hotels", handlers.ListHotels)
	admin.Post("/hotels", handlers.CreateHotel)
	admin.Delete("/hotels/:hotelId", handlers.DeleteHotel)

	admin.Get("/airlines", handlers.ListAirlines)
	admin.Post("/airlines", handlers.CreateAirline)
	admin.Delete("/airlines/:airlineId", handlers.DeleteAirline)

	admin.Get("/airports", handlers.ListAirports)
	admin.Post("/airports", handlers.CreateAirport)
	admin.Delete("/airports/:airportId", handlers.DeleteAirport)
}
