package engine

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Result
	}{
		{
			name: "single unit no fees",
			in:   Input{CostPrice: 100, SalePrice: 150, Quantity: 1},
			want: Result{
				Revenue:       150,
				TotalCost:     100,
				Profit:        50,
				ProfitPerUnit: 50,
				MarginPct:     100 * 50.0 / 150.0,
				ROIPct:        50,
			},
		},
		{
			name: "commission tax and logistics",
			in: Input{
				CostPrice:     200,
				SalePrice:     500,
				CommissionPct: 15,
				LogisticsCost: 50,
				TaxPct:        6,
				Quantity:      10,
			},
			want: Result{
				Revenue:       5000,
				TotalCost:     2500 + 750 + 300,
				Profit:        5000 - 3550,
				ProfitPerUnit: 145,
				MarginPct:     1450.0 / 5000.0 * 100,
				ROIPct:        1450.0 / 2500.0 * 100,
			},
		},
		{
			name: "loss making position",
			in: Input{
				CostPrice:     300,
				SalePrice:     310,
				CommissionPct: 20,
				Quantity:      2,
			},
			want: Result{
				Revenue:       620,
				TotalCost:     600 + 124,
				Profit:        -104,
				ProfitPerUnit: -52,
				MarginPct:     -104.0 / 620.0 * 100,
				ROIPct:        -104.0 / 600.0 * 100,
			},
		},
		{
			name: "zero sale price",
			in:   Input{CostPrice: 10, SalePrice: 0, Quantity: 1},
			want: Result{
				Revenue:       0,
				TotalCost:     10,
				Profit:        -10,
				ProfitPerUnit: -10,
				MarginPct:     0,
				ROIPct:        -100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			if err != nil {
				t.Fatalf("Calculate() unexpected error: %v", err)
			}
			if !almostEqual(got.Revenue, tt.want.Revenue) {
				t.Errorf("Revenue = %v, want %v", got.Revenue, tt.want.Revenue)
			}
			if !almostEqual(got.TotalCost, tt.want.TotalCost) {
				t.Errorf("TotalCost = %v, want %v", got.TotalCost, tt.want.TotalCost)
			}
			if !almostEqual(got.Profit, tt.want.Profit) {
				t.Errorf("Profit = %v, want %v", got.Profit, tt.want.Profit)
			}
			if !almostEqual(got.ProfitPerUnit, tt.want.ProfitPerUnit) {
				t.Errorf("ProfitPerUnit = %v, want %v", got.ProfitPerUnit, tt.want.ProfitPerUnit)
			}
			if !almostEqual(got.MarginPct, tt.want.MarginPct) {
				t.Errorf("MarginPct = %v, want %v", got.MarginPct, tt.want.MarginPct)
			}
			if !almostEqual(got.ROIPct, tt.want.ROIPct) {
				t.Errorf("ROIPct = %v, want %v", got.ROIPct, tt.want.ROIPct)
			}
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"zero quantity", Input{SalePrice: 100, Quantity: 0}, "quantity"},
		{"negative quantity", Input{SalePrice: 100, Quantity: -5}, "quantity"},
		{"negative cost price", Input{CostPrice: -1, SalePrice: 100, Quantity: 1}, "cost_price"},
		{"negative sale price", Input{SalePrice: -100, Quantity: 1}, "sale_price"},
		{"negative logistics", Input{SalePrice: 100, LogisticsCost: -2, Quantity: 1}, "logistics_cost"},
		{"commission above 100", Input{SalePrice: 100, CommissionPct: 101, Quantity: 1}, "commission_percent"},
		{"negative commission", Input{SalePrice: 100, CommissionPct: -1, Quantity: 1}, "commission_percent"},
		{"tax above 100", Input{SalePrice: 100, TaxPct: 150, Quantity: 1}, "tax_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			if err == nil {
				t.Fatal("Calculate() expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Calculate() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}
