package services

import (
	"testing"
	"time"

	"github.com/fauzanakmal/travel_agency/models"
)

func TestSummarizePayments(t *testing.T) {
	payments := []models.Payment{
		{Amount: 1_000_000, Status: "paid"},
		{Amount: 500_000, Status: "pending"},
		{Amount: 250_000, Status: "failed"},
	}

	amounts := SummarizePayments(3_000_000, payments)
	if amounts.Paid != 1_000_000 {
		t.Errorf("Paid = %.0f, want 1000000", amounts.Paid)
	}
	if amounts.Pending != 500_000 {
		t.Errorf("Pending = %.0f, want 500000", amounts.Pending)
	}
	if amounts.Remaining != 1_500_000 {
		t.Errorf("Remaining = %.0f, want 1500000", amounts.Remaining)
	}
}

func TestBuildPaymentOptions(t *testing.T) {
	tests := []struct {
		name      string
		amounts   PaymentAmounts
		minimumDP float64
		wantTypes []string
		wantDP    float64
	}{
		{
			name:      "deposit offered before any payment",
			amounts:   PaymentAmounts{Paid: 0, Remaining: 80_000_000},
			minimumDP: 10_000_000,
			wantTypes: []string{"dp", "full"},
			wantDP:    10_000_000,
		},
		{
			name:      "deposit capped at remaining",
			amounts:   PaymentAmounts{Paid: 0, Remaining: 5_000_000},
			minimumDP: 10_000_000,
			wantTypes: []string{"dp", "full"},
			wantDP:    5_000_000,
		},
		{
			name:      "no deposit after money has cleared",
			amounts:   PaymentAmounts{Paid: 10_000_000, Remaining: 70_000_000},
			minimumDP: 10_000_000,
			wantTypes: []string{"full"},
		},
		{
			name:      "no deposit when package has none",
			amounts:   PaymentAmounts{Paid: 0, Remaining: 80_000_000},
			minimumDP: 0,
			wantTypes: []string{"full"},
		},
		{
			name:      "nothing offered when fully covered",
			amounts:   PaymentAmounts{Paid: 80_000_000, Remaining: 0},
			minimumDP: 10_000_000,
			wantTypes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := BuildPaymentOptions(tt.amounts, tt.minimumDP)
			if len(options) != len(tt.wantTypes) {
				t.Fatalf("got %d options, want %d", len(options), len(tt.wantTypes))
			}
			for i, want := range tt.wantTypes {
				if options[i].Type != want {
					t.Errorf("option[%d].Type = %s, want %s", i, options[i].Type, want)
				}
			}
			if tt.wantDP > 0 && options[0].Amount != tt.wantDP {
				t.Errorf("dp amount = %.0f, want %.0f", options[0].Amount, tt.wantDP)
			}
		})
	}
}

func TestComputePaymentDeadlines(t *testing.T) {
	departure := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	deadlines := ComputePaymentDeadlines(departure, 30, 7, now)

	if want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC); !deadlines.DPDeadline.Equal(want) {
		t.Errorf("DPDeadline = %v, want %v", deadlines.DPDeadline, want)
	}
	if want := time.Date(2026, 9, 24, 0, 0, 0, 0, time.UTC); !deadlines.FullDeadline.Equal(want) {
		t.Errorf("FullDeadline = %v, want %v", deadlines.FullDeadline, want)
	}
	if !deadlines.IsDPOverdue {
		t.Error("IsDPOverdue = false, want true")
	}
	if deadlines.IsFullOverdue {
		t.Error("IsFullOverdue = true, want false")
	}
}

func TestClassifyPaymentType(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		amounts PaymentAmounts
		want    string
	}{
		{"covers the remainder", 80_000_000, PaymentAmounts{Paid: 0, Remaining: 80_000_000}, "full"},
		{"first partial payment", 10_000_000, PaymentAmounts{Paid: 0, Remaining: 80_000_000}, "dp"},
		{"later partial payment", 20_000_000, PaymentAmounts{Paid: 10_000_000, Remaining: 70_000_000}, "installment"},
		{"overpayment still counts as full", 90_000_000, PaymentAmounts{Paid: 0, Remaining: 80_000_000}, "full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPaymentType(tt.amount, tt.amounts); got != tt.want {
				t.Errorf("ClassifyPaymentType = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHasPendingPayment(t *testing.T) {
	if HasPendingPayment([]models.Payment{{Status: "paid"}, {Status: "failed"}}) {
		t.Error("HasPendingPayment = true, want false")
	}
	if !HasPendingPayment([]models.Payment{{Status: "paid"}, {Status: "pending"}}) {
		t.Error("HasPendingPayment = false, want true")
	}
}

// A full-price payment on a quad booking settles the balance exactly.
func TestFullPaymentSettlesQuadBooking(t *testing.T) {
	totals, err := CalculateRoomTotals([]RoomSelection{{RoomType: "quad", Quantity: 1, Price: 20_000_000}})
	if err != nil {
		t.Fatalf("CalculateRoomTotals returned error: %v", err)
	}
	if totals.TotalPilgrims != 4 || totals.TotalPrice != 80_000_000 {
		t.Fatalf("totals = %+v, want 4 pilgrims and 80000000", totals)
	}

	amounts := SummarizePayments(totals.TotalPrice, []models.Payment{{Amount: 80_000_000, Status: "paid"}})
	if amounts.Remaining != 0 {
		t.Errorf("Remaining = %.0f, want 0", amounts.Remaining)
	}
}
