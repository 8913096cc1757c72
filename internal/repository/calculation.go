package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/203225014/WB-calc/internal/model"
)

const calculationColumns = `id, user_id, cost_price, sale_price, commission_percent,
	logistics_cost, tax_percent, quantity, revenue, total_cost, profit,
	profit_per_unit, margin_percent, roi_percent, created_at`

// CalculationRepository handles calculation persistence operations.
type CalculationRepository struct {
	db *sql.DB
}

// NewCalculationRepository creates a new CalculationRepository.
func NewCalculationRepository(db *sql.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

// Create inserts a new calculation record, stamping its creation time, and
// sets the generated ID on the struct.
func (r *CalculationRepository) Create(ctx context.Context, calc *model.Calculation) error {
	query := `INSERT INTO calculations (user_id, cost_price, sale_price, commission_percent,
		logistics_cost, tax_percent, quantity, revenue, total_cost, profit,
		profit_per_unit, margin_percent, roi_percent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	calc.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		calc.UserID, calc.CostPrice, calc.SalePrice, calc.CommissionPct,
		calc.LogisticsCost, calc.TaxPct, calc.Quantity, calc.Revenue,
		calc.TotalCost, calc.Profit, calc.ProfitPerUnit, calc.MarginPct,
		calc.ROIPct, calc.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	calc.ID = id
	return nil
}

// ListByOwner retrieves one page of a user's calculations, newest first.
// Ties on created_at are broken by id so paging stays deterministic.
func (r *CalculationRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]model.Calculation, error) {
	query := `SELECT ` + calculationColumns + ` FROM calculations
		WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCalculations(rows)
}

// ListAll retrieves one page of calculations across all owners, newest first.
func (r *CalculationRepository) ListAll(ctx context.Context, offset, limit int) ([]model.Calculation, error) {
	query := `SELECT ` + calculationColumns + ` FROM calculations
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCalculations(rows)
}

func scanCalculations(rows *sql.Rows) ([]model.Calculation, error) {
	var calcs []model.Calculation
	for rows.Next() {
		var c model.Calculation
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.CostPrice, &c.SalePrice, &c.CommissionPct,
			&c.LogisticsCost, &c.TaxPct, &c.Quantity, &c.Revenue, &c.TotalCost,
			&c.Profit, &c.ProfitPerUnit, &c.MarginPct, &c.ROIPct, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		calcs = append(calcs, c)
	}

	return calcs, rows.Err()
}
