package services

import "errors"

// Occupancy multipliers are fixed business constants, not data-driven.
// Changing them would silently diverge stored booking totals.
var roomOccupancy = map[string]int{
	"quad":   4,
	"triple": 3,
	"double": 2,
	"single": 1,
}

var ErrUnknownRoomType = errors.New("unknown room type")
var ErrNoOccupants = errors.New("at least one room must be selected")

type RoomSelection struct {
	RoomType string  `json:"room_type"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type RoomTotals struct {
	TotalPilgrims int     `json:"total_pilgrims"`
	TotalPrice    float64 `json:"total_price"`
}

func RoomMultiplier(roomType string) (int, error) {
	m, ok := roomOccupancy[roomType]
	if !ok {
		return 0, ErrUnknownRoomType
	}
	return m, nil
}

// RoomSubtotal is quantity x price-per-occupant x occupancy.
func RoomSubtotal(sel RoomSelection) (float64, error) {
	m, err := RoomMultiplier(sel.RoomType)
	if err != nil {
		return 0, err
	}
	return float64(sel.Quantity) * sel.Price * float64(m), nil
}

func CalculateRoomTotals(selections []RoomSelection) (RoomTotals, error) {
	var totals RoomTotals
	for _, sel := range selections {
		m, err := RoomMultiplier(sel.RoomType)
		if err != nil {
			return RoomTotals{}, err
		}
		totals.TotalPilgrims += sel.Quantity * m
		totals.TotalPrice += float64(sel.Quantity) * sel.Price * float64(m)
	}
	return totals, nil
}

// ValidateRoomTotals guards the room-selection step of the booking wizard.
func ValidateRoomTotals(totals RoomTotals) error {
	if totals.TotalPilgrims <= 0 {
		return ErrNoOccupants
	}
	return nil
}
