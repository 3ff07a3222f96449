package usecase

import (
	"context"
	"fmt"

	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/domain/port"
)

// defaultRateHistoryLimit bounds the rate history attached to a product
// detail when the caller does not ask for a specific window.
const defaultRateHistoryLimit = 12

// GetProductUseCase retrieves a product with its institution and recent rate
// history.
type GetProductUseCase struct {
	catalog port.ProductCatalog
	rates   port.RateHistoryRepository
}

// NewGetProductUseCase wires dependencies.
func NewGetProductUseCase(catalog port.ProductCatalog, rates port.RateHistoryRepository) *GetProductUseCase {
	return &GetProductUseCase{catalog: catalog, rates: rates}
}

// Execute fetches the product and attaches up to the requested number of
// recent rate observations.
func (uc *GetProductUseCase) Execute(ctx context.Context, req dto.GetProductRequest) (dto.ProductResponse, error) {
	entry, err := uc.catalog.FindByID(ctx, req.ProductID)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("find product: %w", err)
	}

	limit := req.RateHistoryLimit
	if limit <= 0 {
		limit = defaultRateHistoryLimit
	}
	history, err := uc.rates.HistoryForProduct(ctx, req.ProductID, limit)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("load rate history: %w", err)
	}

	resp := toProductResponse(entry)
	resp.RateHistory = make([]dto.RateObservationResponse, len(history))
	for i, obs := range history {
		resp.RateHistory[i] = toRateObservationResponse(obs)
	}
	return resp, nil
}
