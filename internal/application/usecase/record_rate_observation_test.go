package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/application/usecase"
	"github.com/loanscope/loanscope/internal/domain/event"
	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
)

func validObservationRequest() dto.RecordRateObservationRequest {
	return dto.RecordRateObservationRequest{
		ProductID:     "a",
		RateBps:       442,
		TermMonths:    360,
		ScoreRangeMin: 670,
		ScoreRangeMax: 739,
		Conditions:    []string{"Autopay enrollment"},
	}
}

func TestRecordRateObservation_Execute(t *testing.T) {
	existingProduct := func() *mockProductCatalog {
		return &mockProductCatalog{
			findByIDFunc: func(_ context.Context, id string) (model.CatalogEntry, error) {
				if id == "a" {
					return mortgageEntry("a", 435, nil), nil
				}
				return model.CatalogEntry{}, port.ErrProductNotFound
			},
		}
	}

	t.Run("appends the observation and publishes the event", func(t *testing.T) {
		rates := &mockRateHistory{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewRecordRateObservationUseCase(existingProduct(), rates, publisher)

		resp, err := uc.Execute(context.Background(), validObservationRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "a", resp.ProductID)
		assert.Equal(t, 442, resp.RateBps)
		assert.Equal(t, 670, resp.ScoreRangeMin)
		assert.Equal(t, 739, resp.ScoreRangeMax)
		assert.False(t, resp.ObservedAt.IsZero(), "observed_at defaults to now")

		require.Len(t, rates.appended, 1)
		require.Len(t, publisher.publishedEvents, 1)
		recorded, ok := publisher.publishedEvents[0].(event.RateObservationRecorded)
		require.True(t, ok)
		assert.Equal(t, "ratewatch.observation.recorded", recorded.EventType())
		assert.Equal(t, "a", recorded.ProductID)
	})

	t.Run("preserves an explicit observation time", func(t *testing.T) {
		rates := &mockRateHistory{}
		uc := usecase.NewRecordRateObservationUseCase(existingProduct(), rates, &mockEventPublisher{})

		req := validObservationRequest()
		req.ObservedAt = time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req.ObservedAt, resp.ObservedAt)
	})

	t.Run("fails for an unknown product", func(t *testing.T) {
		uc := usecase.NewRecordRateObservationUseCase(existingProduct(), &mockRateHistory{}, &mockEventPublisher{})

		req := validObservationRequest()
		req.ProductID = "missing"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrProductNotFound)
	})

	t.Run("fails on an inverted score range", func(t *testing.T) {
		uc := usecase.NewRecordRateObservationUseCase(existingProduct(), &mockRateHistory{}, &mockEventPublisher{})

		req := validObservationRequest()
		req.ScoreRangeMin = 800
		req.ScoreRangeMax = 700
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid score range")
	})

	t.Run("fails when the append fails", func(t *testing.T) {
		rates := &mockRateHistory{
			appendFunc: func(_ context.Context, _ model.RateObservation) error {
				return fmt.Errorf("database unavailable")
			},
		}
		uc := usecase.NewRecordRateObservationUseCase(existingProduct(), rates, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validObservationRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "append observation")
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}
		uc := usecase.NewRecordRateObservationUseCase(existingProduct(), &mockRateHistory{}, publisher)

		_, err := uc.Execute(context.Background(), validObservationRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish event")
	})
}
