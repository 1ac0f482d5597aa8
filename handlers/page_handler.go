package handlers

import (
	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/fauzanakmal/travel_agency/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetPageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var page models.Page
	if err := database.DB.Where("slug = ? AND is_published = ?", slug, true).First(&page).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
	}
	return c.JSON(page)
}

func GetNavTree(c *fiber.Ctx) error {
	var pages []models.Page
	if err := database.DB.Where("is_published = ?", true).Find(&pages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pages"})
	}
	return c.JSON(services.BuildNavTree(pages))
}

type PageRequest struct {
	Title       string  `json:"title" validate:"required,min=2"`
	Slug        string  `json:"slug" validate:"required,min=2"`
	Content     string  `json:"content"`
	ParentID    *string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
	SortOrder   int     `json:"sort_order"`
	IsPublished bool    `json:"is_published"`
}

func CreatePage(c *fiber.Ctx) error {
	var req PageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page := models.Page{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		ParentID:    parseOptionalUUID(req.ParentID),
		SortOrder:   req.SortOrder,
		IsPublished: req.IsPublished,
	}
	if err := database.DB.Create(&page).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create page"})
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

func UpdatePage(c *fiber.Ctx) error {
	pageID := c.Params("pageId")

	var page models.Page
	if err := database.DB.First(&page, "id = ?", pageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
	}

	var req PageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// A page cannot become its own parent.
	if req.ParentID != nil {
		if parentID, err := uuid.Parse(*req.ParentID); err == nil && parentID == page.ID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A page cannot be its own parent"})
		}
	}

	page.Title = req.Title
	page.Slug = req.Slug
	page.Content = req.Content
	page.ParentID = parseOptionalUUID(req.ParentID)
	page.SortOrder = req.SortOrder
	page.IsPublished = req.IsPublished

	if err := database.DB.Save(&page).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update page"})
	}
	return c.JSON(page)
}

func DeletePage(c *fiber.Ctx) error {
	pageID := c.Params("pageId")

	// Children are promoted to roots rather than deleted.
	if err := database.DB.Model(&models.Page{}).Where("parent_id = ?", pageID).Update("parent_id", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to detach child pages"})
	}

	if err := database.DB.Delete(&models.Page{}, "id = ?", pageID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete page"})
	}
	return c.JSON(fiber.Map{"message": "Page deleted successfully"})
}
