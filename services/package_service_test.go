package services

import (
	"testing"
	"time"

	"github.com/fauzanakmal/travel_agency/models"
)

func TestLowestPrice(t *testing.T) {
	departures := []models.Departure{
		{Prices: []models.DeparturePrice{
			{RoomType: "quad", Price: 25_000_000},
			{RoomType: "double", Price: 32_000_000},
		}},
		{Prices: []models.DeparturePrice{
			{RoomType: "quad", Price: 23_500_000},
		}},
	}

	if got := LowestPrice(departures); got != 23_500_000 {
		t.Errorf("LowestPrice = %.0f, want 23500000", got)
	}
	if got := LowestPrice(nil); got != 0 {
		t.Errorf("LowestPrice(nil) = %.0f, want 0", got)
	}
}

func TestNearestOpenDeparture(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	departures := []models.Departure{
		{Status: "departed", DepartureDate: now.AddDate(0, -1, 0)},
		{Status: "open", DepartureDate: now.AddDate(0, 3, 0)},
		{Status: "open", DepartureDate: now.AddDate(0, 1, 0)},
		{Status: "closed", DepartureDate: now.AddDate(0, 0, 7)},
	}

	nearest := NearestOpenDeparture(departures, now)
	if nearest == nil {
		t.Fatal("NearestOpenDeparture returned nil")
	}
	if want := now.AddDate(0, 1, 0); !nearest.DepartureDate.Equal(want) {
		t.Errorf("nearest departure = %v, want %v", nearest.DepartureDate, want)
	}
}

func TestNearestOpenDepartureNoneOpen(t *testing.T) {
	now := time.Now()
	departures := []models.Departure{
		{Status: "closed", DepartureDate: now.AddDate(0, 1, 0)},
		{Status: "open", DepartureDate: now.AddDate(0, -1, 0)},
	}
	if nearest := NearestOpenDeparture(departures, now); nearest != nil {
		t.Errorf("expected nil, got departure on %v", nearest.DepartureDate)
	}
}
