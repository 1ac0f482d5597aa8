package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

func GetDashboardStats(c *fiber.Ctx) error {
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	var bookingsByStatus []statusCount
	database.DB.Model(&models.Booking{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&bookingsByStatus)

	var totalRevenue float64
	database.DB.Model(&models.Payment{}).
		Where("status = ?", "paid").
		Select("coalesce(sum(amount), 0)").
		Scan(&totalRevenue)

	var totalCustomers int64
	database.DB.Model(&models.User{}).Where("role = ?", "customer").Count(&totalCustomers)

	var pendingPayments int64
	database.DB.Model(&models.Payment{}).Where("status = ?", "pending").Count(&pendingPayments)

	var upcomingDepartures int64
	database.DB.Model(&models.Departure{}).
		Where("status = ? AND departure_date > ?", "open", time.Now()).
		Count(&upcomingDepartures)

	return c.JSON(fiber.Map{
		"bookings_by_status":  bookingsByStatus,
		"total_revenue":       totalRevenue,
		"total_customers":     totalCustomers,
		"pending_payments":    pendingPayments,
		"upcoming_departures": upcomingDepartures,
	})
}

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := strings.TrimSpace(c.Query("search"))
	offset := (page - 1) * limit

	query := database.DB.Model(&models.User{})
	countQuery := database.DB.Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
		countQuery = countQuery.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
	}

	var totalUsers int64
	countQuery.Count(&totalUsers)

	var users []models.User
	query.Offset(offset).Limit(limit).Order("created_at desc").Find(&users)

	return c.JSON(fiber.Map{
		"data": users,
		"meta": fiber.Map{
			"total": totalUsers,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetAllBookings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	status := strings.TrimSpace(c.Query("status"))
	offset := (page - 1) * limit

	query := database.DB.Model(&models.Booking{})
	countQuery := database.DB.Model(&models.Booking{})
	if status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}

	var total int64
	countQuery.Count(&total)

	var bookings []models.Booking
	query.
		Preload("User").
		Preload("Package").
		Preload("Departure").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&bookings)

	return c.JSON(fiber.Map{
		"data": bookings,
		"meta": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ExportBookings streams an Excel workbook of every booking, optionally
// filtered by status.
func ExportBookings(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))

	query := database.DB.
		Preload("User").
		Preload("Package").
		Preload("Departure").
		Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Bookings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Code", "Customer", "Email", "Package", "Departure", "Pilgrims", "Total Price", "Status", "Created"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, booking := range bookings {
		values := []interface{}{
			booking.Code,
			booking.User.FullName,
			booking.User.Email,
			booking.Package.Title,
			booking.Departure.DepartureDate.Format("2006-01-02"),
			booking.TotalPilgrims,
			booking.TotalPrice,
			booking.Status,
			booking.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export file"})
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	Slug string `json:"slug" validate:"required,min=2"`
}

func CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	category := models.Category{Name: req.Name, Slug: req.Slug}
	if err := database.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	database.DB.Order("name asc").Find(&categories)
	return c.JSON(categories)
}

func DeleteCategory(c *fiber.Ctx) error {
	if err := database.DB.Delete(&models.Category{}, "id = ?", c.Params("categoryId")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}

type HotelRequest struct {
	Name   string `json:"name" validate:"required,min=2"`
	City   string `json:"city"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

func CreateHotel(c *fiber.Ctx) error {
	var req HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hotel := models.Hotel{Name: req.Name, City: req.City, Rating: req.Rating}
	if err := database.DB.Create(&hotel).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create hotel"})
	}
	return c.Status(fiber.StatusCreated).JSON(hotel)
}

func ListHotels(c *fiber.Ctx) error {
	var hotels []models.Hotel
	database.DB.Order("name asc").Find(&hotels)
	return c.JSON(hotels)
}

func DeleteHotel(c *fiber.Ctx) error {
	if err := database.DB.Delete(&models.Hotel{}, "id = ?", c.Params("hotelId")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete hotel"})
	}
	return c.JSON(fiber.Map{"message": "Hotel deleted successfully"})
}

type AirlineRequest struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Code    string  `json:"code" validate:"required,min=2,max=10"`
	LogoURL *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

func CreateAirline(c *fiber.Ctx) error {
	var req AirlineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	airline := models.Airline{Name: req.Name, Code: req.Code, LogoURL: req.LogoURL}
	if err := database.DB.Create(&airline).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create airline"})
	}
	return c.Status(fiber.StatusCreated).JSON(airline)
}

func ListAirlines(c *fiber.Ctx) error {
	var airlines []models.Airline
	database.DB.Order("name asc").Find(&airlines)
	return c.JSON(airlines)
}

func DeleteAirline(c *fiber.Ctx) error {
	if err := database.DB.Delete(&models.Airline{}, "id = ?", c.Params("airlineId")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete airline"})
	}
	return c.JSON(fiber.Map{"message": "Airline deleted successfully"})
}

type AirportRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	City string `json:"city"`
	Code string `json:"code" validate:"required,min=3,max=10"`
}

func CreateAirport(c *fiber.Ctx) error {
	var req AirportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	airport := models.Airport{Name: req.Name, City: req.City, Code: req.Code}
	if err := database.DB.Create(&airport).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create airport"})
	}
	return c.Status(fiber.StatusCreated).JSON(airport)
}

func ListAirports(c *fiber.Ctx) error {
	var airports []models.Airport
	database.DB.Order("name asc").Find(&airports)
	return c.JSON(airports)
}

func DeleteAirport(c *fiber.Ctx) error {
	if err := database.DB.Delete(&models.Airport{}, "id = ?", c.Params("airportId")).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete airport"})
	}
	return c.JSON(fiber.Map{"message": "Airport deleted successfully"})
}
