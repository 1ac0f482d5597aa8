package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/fauzanakmal/travel_agency/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PackageSummary struct {
	models.Package
	LowestPrice      float64    `json:"lowest_price"`
	NearestDeparture *time.Time `json:"nearest_departure,omitempty"`
}

func ListPackages(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "12"))
	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))
	offset := (page - 1) * limit

	query := database.DB.Model(&models.Package{}).Where("is_published = ?", true)
	countQuery := database.DB.Model(&models.Package{}).Where("is_published = ?", true)

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("title ILIKE ?", searchTerm)
		countQuery = countQuery.Where("title ILIKE ?", searchTerm)
	}
	if category != "" {
		query = query.Joins("JOIN categories ON categories.id = packages.category_id").Where("categories.slug = ?", category)
		countQuery = countQuery.Joins("JOIN categories ON categories.id = packages.category_id").Where("categories.slug = ?", category)
	}

	var total int64
	countQuery.Count(&total)

	var packages []models.Package
	query.
		Preload("Category").
		Preload("Departures", "status = ?", "open").
		Preload("Departures.Prices").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&packages)

	now := time.Now()
	summaries := make([]PackageSummary, 0, len(packages))
	for _, pkg := range packages {
		summary := PackageSummary{
			Package:     pkg,
			LowestPrice: services.LowestPrice(pkg.Departures),
		}
		if nearest := services.NearestOpenDeparture(pkg.Departures, now); nearest != nil {
			summary.NearestDeparture = &nearest.DepartureDate
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(fiber.Map{
		"data": summaries,
		"meta": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetPackageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var pkg models.Package
	err := database.DB.
		Preload("Category").
		Preload("Hotel").
		Preload("Airline").
		Preload("Airport").
		Preload("Departures", "status = ?", "open").
		Preload("Departures.Prices").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&pkg).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	return c.JSON(PackageSummary{
		Package:     pkg,
		LowestPrice: services.LowestPrice(pkg.Departures),
	})
}

type PackageRequest struct {
	Title            string  `json:"title" validate:"required,min=3"`
	Slug             string  `json:"slug" validate:"required,min=3"`
	Description      string  `json:"description"`
	DurationDays     int     `json:"duration_days" validate:"required,gt=0"`
	ImageURL         *string `json:"image_url,omitempty" validate:"omitempty,url"`
	MinimumDP        float64 `json:"minimum_dp" validate:"min=0"`
	DPDeadlineDays   int     `json:"dp_deadline_days" validate:"min=0"`
	FullDeadlineDays int     `json:"full_deadline_days" validate:"min=0"`
	CategoryID       *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	HotelID          *string `json:"hotel_id,omitempty" validate:"omitempty,uuid"`
	AirlineID        *string `json:"airline_id,omitempty" validate:"omitempty,uuid"`
	AirportID        *string `json:"airport_id,omitempty" validate:"omitempty,uuid"`
	IsPublished      bool    `json:"is_published"`
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func applyPackageRequest(pkg *models.Package, req PackageRequest) {
	pkg.Title = req.Title
	pkg.Slug = req.Slug
	pkg.Description = req.Description
	pkg.DurationDays = req.DurationDays
	pkg.ImageURL = req.ImageURL
	pkg.MinimumDP = req.MinimumDP
	if req.DPDeadlineDays > 0 {
		pkg.DPDeadlineDays = req.DPDeadlineDays
	}
	if req.FullDeadlineDays > 0 {
		pkg.FullDeadlineDays = req.FullDeadlineDays
	}
	pkg.CategoryID = parseOptionalUUID(req.CategoryID)
	pkg.HotelID = parseOptionalUUID(req.HotelID)
	pkg.AirlineID = parseOptionalUUID(req.AirlineID)
	pkg.AirportID = parseOptionalUUID(req.AirportID)
	pkg.IsPublished = req.IsPublished
}

func CreatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var pkg models.Package
	applyPackageRequest(&pkg, req)
	if err := database.DB.Create(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create package"})
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func UpdatePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	var pkg models.Package
	if err := database.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applyPackageRequest(&pkg, req)
	if err := database.DB.Save(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update package"})
	}
	return c.JSON(pkg)
}

func DeletePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	var count int64
	database.DB.Model(&models.Booking{}).Where("package_id = ?", packageID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Packages with bookings cannot be deleted; unpublish instead"})
	}

	if err := database.DB.Delete(&models.Package{}, "id = ?", packageID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete package"})
	}
	return c.JSON(fiber.Map{"message": "Package deleted successfully"})
}
