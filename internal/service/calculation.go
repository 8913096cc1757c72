package service

import (
	"context"

	"github.com/203225014/WB-calc/internal/engine"
	"github.com/203225014/WB-calc/internal/model"
)

// CalculationStore defines the persistence operations required by CalculationService.
type CalculationStore interface {
	Create(ctx context.Context, calc *model.Calculation) error
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]model.Calculation, error)
	ListAll(ctx context.Context, offset, limit int) ([]model.Calculation, error)
}

// CalculationService evaluates calculation requests and manages history.
type CalculationService struct {
	store CalculationStore
}

// NewCalculationService creates a new CalculationService.
func NewCalculationService(store CalculationStore) *CalculationService {
	return &CalculationService{store: store}
}

// Calculate runs the engine on the request and persists the merged record for
// the owner. Engine validation errors propagate unchanged so the handler can
// surface the reason; nothing is persisted in that case.
func (s *CalculationService) Calculate(ctx context.Context, ownerID int64, req model.CalculationRequest) (model.CalculationResponse, error) {
	result, err := engine.Calculate(engine.Input{
		CostPrice:     req.CostPrice,
		SalePrice:     req.SalePrice,
		CommissionPct: req.CommissionPct,
		LogisticsCost: req.LogisticsCost,
		TaxPct:        req.TaxPct,
		Quantity:      req.Quantity,
	})
	if err != nil {
		return model.CalculationResponse{}, err
	}

	calc := &model.Calculation{
		UserID:        ownerID,
		CostPrice:     req.CostPrice,
		SalePrice:     req.SalePrice,
		CommissionPct: req.CommissionPct,
		LogisticsCost: req.LogisticsCost,
		TaxPct:        req.TaxPct,
		Quantity:      req.Quantity,
		Revenue:       result.Revenue,
		TotalCost:     result.TotalCost,
		Profit:        result.Profit,
		ProfitPerUnit: result.ProfitPerUnit,
		MarginPct:     result.MarginPct,
		ROIPct:        result.ROIPct,
	}

	if err := s.store.Create(ctx, calc); err != nil {
		return model.CalculationResponse{}, err
	}

	return model.PublicCalculation(calc), nil
}

// History returns one page of the owner's calculations, newest first.
func (s *CalculationService) History(ctx context.Context, ownerID int64, offset, limit int) ([]model.CalculationResponse, error) {
	calcs, err := s.store.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return calcsToResponse(calcs), nil
}

// ListAll returns one page of calculations across all owners, newest first.
func (s *CalculationService) ListAll(ctx context.Context, offset, limit int) ([]model.CalculationResponse, error) {
	calcs, err := s.store.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return calcsToResponse(calcs), nil
}

func calcsToResponse(calcs []model.Calculation) []model.CalculationResponse {
	result := make([]model.CalculationResponse, len(calcs))
	for i := range calcs {
		result[i] = model.PublicCalculation(&calcs[i])
	}
	return result
}
