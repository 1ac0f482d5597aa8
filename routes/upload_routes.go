package routes

import (
	"github.com/fauzanakmal/travel_agency/handlers"
	"github.com/fauzanakmal/travel_agency/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/uploads/signature", middleware.Protected(), middleware.AdminRequired(), handlers.GenerateUploadSignature)
}
