package pricing

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		oldPrice float64
		newPrice float64
		expected Discount
	}{
		{"Half price", 100, 50, Discount{Kind: Percent, Percent: 50}},
		{"No saving", 100, 100, Discount{Kind: Zero}},
		{"Zero old price", 0, 50, Discount{Kind: None}},
		{"Negative old price", -10, 5, Discount{Kind: None}},
		{"Price increase", 50, 100, Discount{Kind: Zero}},
		{"Both zero", 0, 0, Discount{Kind: None}},
		{"Free item", 100, 0, Discount{Kind: Percent, Percent: 100}},
		{"Rounds half up", 3, 2, Discount{Kind: Percent, Percent: 33}},
		{"Rounds up at half", 200, 175, Discount{Kind: Percent, Percent: 13}},
		{"NaN old price", math.NaN(), 10, Discount{Kind: None}},
		{"NaN new price", 100, math.NaN(), Discount{Kind: None}},
		{"Infinite old price", math.Inf(1), 10, Discount{Kind: None}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compute(tt.oldPrice, tt.newPrice)
			if result != tt.expected {
				t.Errorf("Compute(%v, %v) = %+v, want %+v", tt.oldPrice, tt.newPrice, result, tt.expected)
			}
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		input    float64
		expected int
	}{
		{12.4, 12},
		{12.5, 13},
		{12.6, 13},
		{50.0, 50},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := roundHalfUp(tt.input); got != tt.expected {
				t.Errorf("roundHalfUp(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
