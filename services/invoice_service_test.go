package services

import (
	"strings"
	"testing"
	"time"

	"github.com/fauzanakmal/travel_agency/models"
)

func strPtr(s string) *string { return &s }

func sampleInvoiceData() InvoiceData {
	return InvoiceData{
		Booking: models.Booking{
			Code:       "TRV-A1B2C3D4",
			Status:     "waiting_payment",
			TotalPrice: 80_000_000,
			User:       models.User{FullName: "Ahmad Fauzi"},
			Package:    models.Package{Title: "Umrah Ramadhan 12 Days"},
			Departure: models.Departure{
				DepartureDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Rooms: []models.BookingRoom{
			{RoomType: "quad", Quantity: 1, Price: 20_000_000, Subtotal: 80_000_000},
		},
		Pilgrims: []models.BookingPilgrim{
			{Name: "Ahmad Fauzi", Gender: "male"},
			{Name: "Siti Rahma", Gender: "female"},
		},
		Payments: []models.Payment{
			{Amount: 10_000_000, PaymentType: "dp", Status: "paid", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		},
		Setting:   models.Setting{CompanyName: "Safar Travel", BankName: strPtr("BCA"), BankAccountNumber: strPtr("1234567890")},
		TotalPaid: 10_000_000,
		Remaining: 70_000_000,
		IssuedAt:  time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderInvoiceHTML(t *testing.T) {
	html, err := RenderInvoiceHTML(sampleInvoiceData())
	if err != nil {
		t.Fatalf("RenderInvoiceHTML returned error: %v", err)
	}

	for _, want := range []string{
		"Invoice TRV-A1B2C3D4",
		"Safar Travel",
		"Umrah Ramadhan 12 Days",
		"1 October 2026",
		"Rp 80.000.000",
		"Rp 10.000.000",
		"Remaining: Rp 70.000.000",
		"Siti Rahma",
		"Transfer to: BCA 1234567890",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered invoice missing %q", want)
		}
	}
}

func TestRenderInvoiceHTMLOmitsRemainingWhenSettled(t *testing.T) {
	data := sampleInvoiceData()
	data.TotalPaid = data.Booking.TotalPrice
	data.Remaining = 0

	html, err := RenderInvoiceHTML(data)
	if err != nil {
		t.Fatalf("RenderInvoiceHTML returned error: %v", err)
	}
	if strings.Contains(html, "Remaining:") {
		t.Error("settled invoice should not show a remaining line")
	}
}

func TestRenderInvoiceHTMLOmitsEmptySections(t *testing.T) {
	data := sampleInvoiceData()
	data.Rooms = nil
	data.Payments = nil

	html, err := RenderInvoiceHTML(data)
	if err != nil {
		t.Fatalf("RenderInvoiceHTML returned error: %v", err)
	}
	if strings.Contains(html, "<h3>Rooms</h3>") {
		t.Error("invoice without rooms should not render the rooms table")
	}
	if strings.Contains(html, "<h3>Payments</h3>") {
		t.Error("invoice without payments should not render the payments table")
	}
	if !strings.Contains(html, "<h3>Pilgrims</h3>") {
		t.Error("pilgrims table went missing")
	}
}

func TestRenderInvoiceHTMLEscapesUserContent(t *testing.T) {
	data := sampleInvoiceData()
	data.Pilgrims[0].Name = `<script>alert("x")</script>`

	html, err := RenderInvoiceHTML(data)
	if err != nil {
		t.Fatalf("RenderInvoiceHTML returned error: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("pilgrim name was not escaped")
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{950, "Rp 950"},
		{1_500, "Rp 1.500"},
		{25_000_000, "Rp 25.000.000"},
		{-500_000, "-Rp 500.000"},
	}

	for _, tt := range tests {
		if got := formatMoney(tt.amount); got != tt.want {
			t.Errorf("formatMoney(%.0f) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}
