package services

import (
	"math"
	"time"

	"github.com/fauzanakmal/travel_agency/models"
)

type PaymentAmounts struct {
	Paid      float64 `json:"paid_amount"`
	Pending   float64 `json:"pending_amount"`
	Remaining float64 `json:"remaining_amount"`
}

type PaymentOption struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

type PaymentDeadlines struct {
	DPDeadline    time.Time `json:"dp_deadline"`
	FullDeadline  time.Time `json:"full_deadline"`
	IsDPOverdue   bool      `json:"is_dp_overdue"`
	IsFullOverdue bool      `json:"is_full_overdue"`
}

func SummarizePayments(totalPrice float64, payments []models.Payment) PaymentAmounts {
	var amounts PaymentAmounts
	for _, p := range payments {
		switch p.Status {
		case "paid":
			amounts.Paid += p.Amount
		case "pending":
			amounts.Pending += p.Amount
		}
	}
	amounts.Remaining = totalPrice - amounts.Paid - amounts.Pending
	return amounts
}

// BuildPaymentOptions offers a deposit only before any money has cleared
// and only when the package defines a minimum deposit.
func BuildPaymentOptions(amounts PaymentAmounts, minimumDP float64) []PaymentOption {
	if amounts.Remaining <= 0 {
		return nil
	}
	var options []PaymentOption
	if amounts.Paid == 0 && minimumDP > 0 {
		options = append(options, PaymentOption{
			Type:   "dp",
			Amount: math.Min(minimumDP, amounts.Remaining),
		})
	}
	options = append(options, PaymentOption{Type: "full", Amount: amounts.Remaining})
	return options
}

// ComputePaymentDeadlines derives deadlines from the departure date. The
// overdue flags are informational; late payments are not blocked.
func ComputePaymentDeadlines(departureDate time.Time, dpDeadlineDays, fullDeadlineDays int, now time.Time) PaymentDeadlines {
	dp := departureDate.AddDate(0, 0, -dpDeadlineDays)
	full := departureDate.AddDate(0, 0, -fullDeadlineDays)
	return PaymentDeadlines{
		DPDeadline:    dp,
		FullDeadline:  full,
		IsDPOverdue:   now.After(dp),
		IsFullOverdue: now.After(full),
	}
}

// ClassifyPaymentType labels a submitted amount: full when it covers the
// remainder, dp for the first partial payment, installment afterwards.
func ClassifyPaymentType(amount float64, amounts PaymentAmounts) string {
	if amount >= amounts.Remaining {
		return "full"
	}
	if amounts.Paid == 0 {
		return "dp"
	}
	return "installment"
}

func HasPendingPayment(payments []models.Payment) bool {
	for _, p := range payments {
		if p.Status == "pending" {
			return true
		}
	}
	return false
}
