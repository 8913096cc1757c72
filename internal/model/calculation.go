package model

import "time"

// Calculation represents a stored unit-economics calculation in the database.
// Input fields are kept alongside the computed results so history listings
// return the full record as it was evaluated.
type Calculation struct {
	ID            int64
	UserID        int64
	CostPrice     float64
	SalePrice     float64
	CommissionPct float64
	LogisticsCost float64
	TaxPct        float64
	Quantity      int
	Revenue       float64
	TotalCost     float64
	Profit        float64
	ProfitPerUnit float64
	MarginPct     float64
	ROIPct        float64
	CreatedAt     time.Time
}

// CalculationRequest represents the input parameters of a calculation.
type CalculationRequest struct {
	CostPrice     float64 `json:"cost_price"`
	SalePrice     float64 `json:"sale_price"`
	CommissionPct float64 `json:"commission_percent"`
	LogisticsCost float64 `json:"logistics_cost"`
	TaxPct        float64 `json:"tax_percent"`
	Quantity      int     `json:"quantity"`
}

// CalculationResponse represents a stored calculation in API responses.
type CalculationResponse struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	CostPrice     float64   `json:"cost_price"`
	SalePrice     float64   `json:"sale_price"`
	CommissionPct float64   `json:"commission_percent"`
	LogisticsCost float64   `json:"logistics_cost"`
	TaxPct        float64   `json:"tax_percent"`
	Quantity      int       `json:"quantity"`
	Revenue       float64   `json:"revenue"`
	TotalCost     float64   `json:"total_cost"`
	Profit        float64   `json:"profit"`
	ProfitPerUnit float64   `json:"profit_per_unit"`
	MarginPct     float64   `json:"margin_percent"`
	ROIPct        float64   `json:"roi_percent"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicCalculation projects a Calculation into its API representation.
func PublicCalculation(c *Calculation) CalculationResponse {
	return CalculationResponse{
		ID:            c.ID,
		OwnerID:       c.UserID,
		CostPrice:     c.CostPrice,
		SalePrice:     c.SalePrice,
		CommissionPct: c.CommissionPct,
		LogisticsCost: c.LogisticsCost,
		TaxPct:        c.TaxPct,
		Quantity:      c.Quantity,
		Revenue:       c.Revenue,
		TotalCost:     c.TotalCost,
		Profit:        c.Profit,
		ProfitPerUnit: c.ProfitPerUnit,
		MarginPct:     c.MarginPct,
		ROIPct:        c.ROIPct,
		CreatedAt:     c.CreatedAt,
	}
}
