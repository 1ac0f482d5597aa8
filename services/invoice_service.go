package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"sync"
	"time"

	config "github.com/fauzanakmal/travel_agency/configs"
	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type InvoiceData struct {
	Booking   models.Booking
	Rooms     []models.BookingRoom
	Pilgrims  []models.BookingPilgrim
	Payments  []models.Payment
	Setting   models.Setting
	TotalPaid float64
	Remaining float64
	IssuedAt  time.Time
}

// AssembleInvoiceData fans out the independent reads and waits for all of
// them before deriving the paid/remaining figures.
func AssembleInvoiceData(bookingID uuid.UUID) (InvoiceData, error) {
	var (
		data InvoiceData
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	record := func(err error) {
		if err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		record(database.DB.
			Preload("User").
			Preload("Package").
			Preload("Departure").
			First(&data.Booking, "id = ?", bookingID).Error)
	}()
	go func() {
		defer wg.Done()
		record(database.DB.Where("booking_id = ?", bookingID).Order("room_type asc").Find(&data.Rooms).Error)
	}()
	go func() {
		defer wg.Done()
		record(database.DB.Where("booking_id = ?", bookingID).Order("created_at asc").Find(&data.Pilgrims).Error)
	}()
	go func() {
		defer wg.Done()
		record(database.DB.Where("booking_id = ?", bookingID).Order("created_at asc").Find(&data.Payments).Error)
	}()
	wg.Wait()

	if len(errs) > 0 {
		return InvoiceData{}, errs[0]
	}

	// Branding is optional; a missing row renders a bare invoice.
	database.DB.First(&data.Setting)

	for _, p := range data.Payments {
		if p.Status == "paid" {
			data.TotalPaid += p.Amount
		}
	}
	data.Remaining = data.Booking.TotalPrice - data.TotalPaid
	data.IssuedAt = time.Now()
	return data, nil
}

// formatMoney renders an IDR amount with dot thousand separators.
func formatMoney(amount float64) string {
	whole := strconv.FormatInt(int64(amount), 10)
	negative := strings.HasPrefix(whole, "-")
	if negative {
		whole = whole[1:]
	}
	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": formatMoney,
	"date":  func(t time.Time) string { return t.Format("2 January 2006") },
	"title": titleCase,
	"inc":   func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Booking.Code}}</title>
<style>
body { font-family: Arial, sans-serif; color: #222; margin: 40px; }
h1 { font-size: 22px; margin-bottom: 0; }
.muted { color: #777; font-size: 12px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { border: 1px solid #ddd; padding: 8px; font-size: 13px; text-align: left; }
th { background: #f5f5f5; }
.totals { margin-top: 16px; font-size: 14px; }
.totals .remaining { color: #b00020; font-weight: bold; }
.header { display: flex; justify-content: space-between; }
img.logo { max-height: 60px; }
</style>
</head>
<body>
<div class="header">
  <div>
    <h1>{{.Setting.CompanyName}}</h1>
    {{if .Setting.Address}}<div class="muted">{{.Setting.Address}}</div>{{end}}
    {{if .Setting.Phone}}<div class="muted">{{.Setting.Phone}}</div>{{end}}
  </div>
  {{if .Setting.LogoURL}}<img class="logo" src="{{.Setting.LogoURL}}" alt="logo">{{end}}
</div>

<h2>Invoice {{.Booking.Code}}</h2>
<div class="muted">Issued {{date .IssuedAt}}</div>

<table>
  <tr><th>Customer</th><td>{{.Booking.User.FullName}}</td></tr>
  <tr><th>Package</th><td>{{.Booking.Package.Title}}</td></tr>
  <tr><th>Departure</th><td>{{date .Booking.Departure.DepartureDate}}</td></tr>
  <tr><th>Status</th><td>{{.Booking.Status}}</td></tr>
</table>

{{if .Rooms}}
<h3>Rooms</h3>
<table>
  <tr><th>Room type</th><th>Quantity</th><th>Price / occupant</th><th>Subtotal</th></tr>
  {{range .Rooms}}
  <tr><td>{{title .RoomType}}</td><td>{{.Quantity}}</td><td>{{money .Price}}</td><td>{{money .Subtotal}}</td></tr>
  {{end}}
</table>
{{end}}

{{if .Pilgrims}}
<h3>Pilgrims</h3>
<table>
  <tr><th>#</th><th>Name</th><th>Gender</th></tr>
  {{range $i, $p := .Pilgrims}}
  <tr><td>{{inc $i}}</td><td>{{$p.Name}}</td><td>{{title $p.Gender}}</td></tr>
  {{end}}
</table>
{{end}}

{{if .Payments}}
<h3>Payments</h3>
<table>
  <tr><th>Date</th><th>Type</th><th>Amount</th><th>Status</th></tr>
  {{range .Payments}}
  <tr><td>{{date .CreatedAt}}</td><td>{{title .PaymentType}}</td><td>{{money .Amount}}</td><td>{{title .Status}}</td></tr>
  {{end}}
</table>
{{end}}

<div class="totals">
  <div>Total: {{money .Booking.TotalPrice}}</div>
  <div>Paid: {{money .TotalPaid}}</div>
  {{if gt .Remaining 0.0}}<div class="remaining">Remaining: {{money .Remaining}}</div>{{end}}
</div>

{{if .Setting.BankName}}
<div class="totals">
  <div>Transfer to: {{.Setting.BankName}} {{if .Setting.BankAccountNumber}}{{.Setting.BankAccountNumber}}{{end}}{{if .Setting.BankAccountHolder}} a/n {{.Setting.BankAccountHolder}}{{end}}</div>
</div>
{{end}}
</body>
</html>
`))

// RenderInvoiceHTML produces a self-contained printable document. Fields go
// through html/template so user-supplied values are escaped.
func RenderInvoiceHTML(data InvoiceData) (string, error) {
	var rendered bytes.Buffer
	if err := invoiceTemplate.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func GenerateInvoicePDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func UploadInvoicePDF(pdfBytes []byte, bookingCode string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("invoices/%s_%s", bookingCode, uuid.New().String()),
		Folder:       "travel_agency_invoices",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(pdfBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
