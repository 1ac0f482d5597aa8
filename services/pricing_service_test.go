package services

import "testing"

func TestCalculateRoomTotals(t *testing.T) {
	tests := []struct {
		name         string
		selections   []RoomSelection
		wantPilgrims int
		wantPrice    float64
	}{
		{
			name: "mixed room types",
			selections: []RoomSelection{
				{RoomType: "quad", Quantity: 1, Price: 25_000_000},
				{RoomType: "triple", Quantity: 2, Price: 28_000_000},
				{RoomType: "double", Quantity: 1, Price: 32_000_000},
			},
			wantPilgrims: 4*1 + 3*2 + 2*1,
			wantPrice:    4*1*25_000_000 + 3*2*28_000_000 + 2*1*32_000_000,
		},
		{
			name: "single quad room",
			selections: []RoomSelection{
				{RoomType: "quad", Quantity: 1, Price: 20_000_000},
			},
			wantPilgrims: 4,
			wantPrice:    80_000_000,
		},
		{
			name: "single occupancy room",
			selections: []RoomSelection{
				{RoomType: "single", Quantity: 3, Price: 40_000_000},
			},
			wantPilgrims: 3,
			wantPrice:    120_000_000,
		},
		{
			name:         "no selections",
			selections:   nil,
			wantPilgrims: 0,
			wantPrice:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := CalculateRoomTotals(tt.selections)
			if err != nil {
				t.Fatalf("CalculateRoomTotals returned error: %v", err)
			}
			if totals.TotalPilgrims != tt.wantPilgrims {
				t.Errorf("TotalPilgrims = %d, want %d", totals.TotalPilgrims, tt.wantPilgrims)
			}
			if totals.TotalPrice != tt.wantPrice {
				t.Errorf("TotalPrice = %.0f, want %.0f", totals.TotalPrice, tt.wantPrice)
			}
		})
	}
}

func TestCalculateRoomTotalsUnknownRoomType(t *testing.T) {
	_, err := CalculateRoomTotals([]RoomSelection{{RoomType: "penthouse", Quantity: 1, Price: 100}})
	if err != ErrUnknownRoomType {
		t.Errorf("error = %v, want ErrUnknownRoomType", err)
	}
}

func TestValidateRoomTotalsBlocksZeroOccupants(t *testing.T) {
	if err := ValidateRoomTotals(RoomTotals{TotalPilgrims: 0}); err != ErrNoOccupants {
		t.Errorf("error = %v, want ErrNoOccupants", err)
	}
	if err := ValidateRoomTotals(RoomTotals{TotalPilgrims: 4}); err != nil {
		t.Errorf("error = %v, want nil", err)
	}
}

func TestRoomSubtotal(t *testing.T) {
	subtotal, err := RoomSubtotal(RoomSelection{RoomType: "double", Quantity: 2, Price: 30_000_000})
	if err != nil {
		t.Fatalf("RoomSubtotal returned error: %v", err)
	}
	if want := 2.0 * 30_000_000 * 2; subtotal != want {
		t.Errorf("subtotal = %.0f, want %.0f", subtotal, want)
	}
}
