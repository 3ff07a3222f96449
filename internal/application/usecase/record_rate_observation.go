package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/domain/event"
	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// RecordRateObservationUseCase appends a rate observation to a product's
// history and publishes the recording event.
type RecordRateObservationUseCase struct {
	catalog   port.ProductCatalog
	rates     port.RateHistoryRepository
	publisher port.EventPublisher
}

// NewRecordRateObservationUseCase wires dependencies.
func NewRecordRateObservationUseCase(
	catalog port.ProductCatalog,
	rates port.RateHistoryRepository,
	publisher port.EventPublisher,
) *RecordRateObservationUseCase {
	return &RecordRateObservationUseCase{
		catalog:   catalog,
		rates:     rates,
		publisher: publisher,
	}
}

// Execute validates the observation against an existing product and appends
// it. ObservedAt defaults to now when unset.
func (uc *RecordRateObservationUseCase) Execute(
	ctx context.Context,
	req dto.RecordRateObservationRequest,
) (dto.RateObservationResponse, error) {
	if _, err := uc.catalog.FindByID(ctx, req.ProductID); err != nil {
		return dto.RateObservationResponse{}, fmt.Errorf("find product: %w", err)
	}

	scoreRange, err := valueobject.NewCreditScoreRange(req.ScoreRangeMin, req.ScoreRangeMax)
	if err != nil {
		return dto.RateObservationResponse{}, fmt.Errorf("invalid score range: %w", err)
	}

	observedAt := req.ObservedAt
	if observedAt.IsZero() {
		observedAt = time.Now().UTC()
	}

	obs, err := model.NewRateObservation(
		req.ProductID, observedAt,
		req.RateBps, req.TermMonths,
		scoreRange, req.Conditions,
	)
	if err != nil {
		return dto.RateObservationResponse{}, fmt.Errorf("create observation: %w", err)
	}

	if err := uc.rates.Append(ctx, obs); err != nil {
		return dto.RateObservationResponse{}, fmt.Errorf("append observation: %w", err)
	}

	evt := event.NewRateObservationRecorded(
		obs.ID(), obs.ProductID(),
		obs.RateBps(), obs.TermMonths(),
		scoreRange.Min(), scoreRange.Max(),
		obs.ObservedAt(),
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.RateObservationResponse{}, fmt.Errorf("publish event: %w", err)
	}

	return toRateObservationResponse(obs), nil
}
