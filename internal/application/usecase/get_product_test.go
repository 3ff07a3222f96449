package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/application/usecase"
	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

func TestGetProduct_Execute(t *testing.T) {
	catalog := &mockProductCatalog{
		findByIDFunc: func(_ context.Context, id string) (model.CatalogEntry, error) {
			if id == "a" {
				return mortgageEntry("a", 435, []string{"Rate lock"}), nil
			}
			return model.CatalogEntry{}, port.ErrProductNotFound
		},
	}

	t.Run("returns the product with its rate history", func(t *testing.T) {
		var requestedLimit int
		rates := &mockRateHistory{
			historyFunc: func(_ context.Context, productID string, limit int) ([]model.RateObservation, error) {
				requestedLimit = limit
				return []model.RateObservation{
					mortgageObservation(t, productID, 442),
					mortgageObservation(t, productID, 435),
				}, nil
			},
		}
		uc := usecase.NewGetProductUseCase(catalog, rates)

		resp, err := uc.Execute(context.Background(), dto.GetProductRequest{ProductID: "a", RateHistoryLimit: 2})

		require.NoError(t, err)
		assert.Equal(t, "a", resp.ID)
		assert.Equal(t, "Institution a", resp.InstitutionName)
		assert.Equal(t, 2, requestedLimit)
		require.Len(t, resp.RateHistory, 2)
		assert.Equal(t, 442, resp.RateHistory[0].RateBps)
	})

	t.Run("applies the default history limit", func(t *testing.T) {
		var requestedLimit int
		rates := &mockRateHistory{
			historyFunc: func(_ context.Context, _ string, limit int) ([]model.RateObservation, error) {
				requestedLimit = limit
				return nil, nil
			},
		}
		uc := usecase.NewGetProductUseCase(catalog, rates)

		_, err := uc.Execute(context.Background(), dto.GetProductRequest{ProductID: "a"})

		require.NoError(t, err)
		assert.Equal(t, 12, requestedLimit)
	})

	t.Run("fails for an unknown product", func(t *testing.T) {
		uc := usecase.NewGetProductUseCase(catalog, &mockRateHistory{})

		_, err := uc.Execute(context.Background(), dto.GetProductRequest{ProductID: "missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrProductNotFound)
	})
}

func TestListProducts_Execute(t *testing.T) {
	t.Run("returns the catalog slice for the type", func(t *testing.T) {
		catalog := &mockProductCatalog{
			listByTypeFunc: func(_ context.Context, lt valueobject.LoanType) ([]model.CatalogEntry, error) {
				require.True(t, lt.Equal(valueobject.LoanTypeAuto))
				return []model.CatalogEntry{mortgageEntry("a", 619, nil)}, nil
			},
		}
		uc := usecase.NewListProductsUseCase(catalog)

		resp, err := uc.Execute(context.Background(), dto.ListProductsRequest{LoanType: "auto"})

		require.NoError(t, err)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "a", resp.Products[0].ID)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		uc := usecase.NewListProductsUseCase(&mockProductCatalog{})

		_, err := uc.Execute(context.Background(), dto.ListProductsRequest{LoanType: "PAYDAY"})
		require.Error(t, err)
	})
}
