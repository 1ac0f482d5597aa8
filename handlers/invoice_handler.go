package handlers

import (
	"log"

	"github.com/fauzanakmal/travel_agency/services"
	"github.com/gofiber/fiber/v2"
)

// GetInvoice returns the printable HTML document; the caller renders or
// prints it. PDF export goes through GenerateInvoicePDF below.
func GetInvoice(c *fiber.Ctx) error {
	booking, err := loadOwnedBooking(c)
	if booking == nil {
		return err
	}

	data, err := services.AssembleInvoiceData(booking.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assemble invoice data"})
	}

	html, err := services.RenderInvoiceHTML(data)
	if err != nil {
		log.Printf("🔥 Invoice rendering failed for booking %s: %v", booking.Code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render invoice"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func GenerateInvoicePDF(c *fiber.Ctx) error {
	booking, err := loadOwnedBooking(c)
	if booking == nil {
		return err
	}

	data, err := services.AssembleInvoiceData(booking.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assemble invoice data"})
	}

	html, err := services.RenderInvoiceHTML(data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render invoice"})
	}

	pdfBytes, err := services.GenerateInvoicePDF(html)
	if err != nil {
		log.Printf("🔥 Invoice PDF generation failed for booking %s: %v", booking.Code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	url, err := services.UploadInvoicePDF(pdfBytes, booking.Code)
	if err != nil {
		log.Printf("🔥 Invoice PDF upload failed for booking %s: %v", booking.Code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload PDF"})
	}

	return c.JSON(fiber.Map{"url": url})
}
