package services

import (
	"time"

	"github.com/fauzanakmal/travel_agency/models"
)

// LowestPrice scans every price list of the given departures and returns the
// cheapest per-occupant price, or 0 when no prices exist yet.
func LowestPrice(departures []models.Departure) float64 {
	var lowest float64
	for _, dep := range departures {
		for _, price := range dep.Prices {
			if lowest == 0 || price.Price < lowest {
				lowest = price.Price
			}
		}
	}
	return lowest
}

// NearestOpenDeparture returns the earliest open departure after now.
func NearestOpenDeparture(departures []models.Departure, now time.Time) *models.Departure {
	var nearest *models.Departure
	for i := range departures {
		dep := &departures[i]
		if dep.Status != "open" || dep.DepartureDate.Before(now) {
			continue
		}
		if nearest == nil || dep.DepartureDate.Before(nearest.DepartureDate) {
			nearest = dep
		}
	}
	return nearest
}
