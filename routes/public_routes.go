package routes

import (
	"github.com/fauzanakmal/travel_agency/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/packages", handlers.ListPackages)
	api.Get("/packages/:slug", handlers.GetPackageBySlug)

	api.Get("/pages/nav", handlers.GetNavTree)
	api.Get("/pages/:slug", handlers.GetPageBySlug)

	api.Get("/settings", handlers.GetSettings)
}
