// Package engine computes marketplace unit economics for a single product
// position: revenue, costs, profit, margin and return on investment. It is a
// pure function of its input and performs no I/O.
package engine

import "fmt"

// Input holds the parameters of one unit-economics calculation.
type Input struct {
	CostPrice     float64
	SalePrice     float64
	CommissionPct float64
	LogisticsCost float64
	TaxPct        float64
	Quantity      int
}

// Result holds the derived figures for an Input.
type Result struct {
	Revenue       float64
	TotalCost     float64
	Profit        float64
	ProfitPerUnit float64
	MarginPct     float64
	ROIPct        float64
}

// ValidationError reports input the engine refuses to evaluate.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validate(in Input) error {
	if in.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if in.CostPrice < 0 {
		return &ValidationError{Field: "cost_price", Reason: "must not be negative"}
	}
	if in.SalePrice < 0 {
		return &ValidationError{Field: "sale_price", Reason: "must not be negative"}
	}
	if in.LogisticsCost < 0 {
		return &ValidationError{Field: "logistics_cost", Reason: "must not be negative"}
	}
	if in.CommissionPct < 0 || in.CommissionPct > 100 {
		return &ValidationError{Field: "commission_percent", Reason: "must be between 0 and 100"}
	}
	if in.TaxPct < 0 || in.TaxPct > 100 {
		return &ValidationError{Field: "tax_percent", Reason: "must be between 0 and 100"}
	}
	return nil
}

// Calculate evaluates the unit economics for in.
// Commission and tax are taken as percentages of gross revenue; logistics and
// cost price are per-unit. Margin is profit over revenue, ROI is profit over
// the money put into the goods (cost price plus logistics).
func Calculate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	qty := float64(in.Quantity)
	revenue := in.SalePrice * qty
	commission := revenue * in.CommissionPct / 100
	tax := revenue * in.TaxPct / 100
	invested := (in.CostPrice + in.LogisticsCost) * qty
	totalCost := invested + commission + tax
	profit := revenue - totalCost

	res := Result{
		Revenue:       revenue,
		TotalCost:     totalCost,
		Profit:        profit,
		ProfitPerUnit: profit / qty,
	}
	if revenue > 0 {
		res.MarginPct = profit / revenue * 100
	}
	if invested > 0 {
		res.ROIPct = profit / invested * 100
	}
	return res, nil
}
