package usecase

import (
	"context"
	"fmt"

	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// ListProductsUseCase returns the catalog slice for one loan type.
type ListProductsUseCase struct {
	catalog port.ProductCatalog
}

// NewListProductsUseCase wires dependencies.
func NewListProductsUseCase(catalog port.ProductCatalog) *ListProductsUseCase {
	return &ListProductsUseCase{catalog: catalog}
}

// Execute lists products of the requested type in catalog order.
func (uc *ListProductsUseCase) Execute(ctx context.Context, req dto.ListProductsRequest) (dto.ListProductsResponse, error) {
	loanType, err := valueobject.ParseLoanType(req.LoanType)
	if err != nil {
		return dto.ListProductsResponse{}, err
	}

	entries, err := uc.catalog.ListByType(ctx, loanType)
	if err != nil {
		return dto.ListProductsResponse{}, fmt.Errorf("list products: %w", err)
	}

	products := make([]dto.ProductResponse, len(entries))
	for i, entry := range entries {
		products[i] = toProductResponse(entry)
	}
	return dto.ListProductsResponse{Products: products}, nil
}
