package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loanscope/loanscope/internal/domain/event"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// RefreshRatesUseCase polls the configured rate feed for every catalog
// product and appends the returned observations. Driven by the tracker
// daemon's schedule.
type RefreshRatesUseCase struct {
	catalog   port.ProductCatalog
	feed      port.RateFeed
	rates     port.RateHistoryRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRefreshRatesUseCase wires dependencies.
func NewRefreshRatesUseCase(
	catalog port.ProductCatalog,
	feed port.RateFeed,
	rates port.RateHistoryRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RefreshRatesUseCase {
	return &RefreshRatesUseCase{
		catalog:   catalog,
		feed:      feed,
		rates:     rates,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute refreshes rates for the whole catalog and returns the number of
// observations recorded. A failure on one product skips that product rather
// than aborting the run.
func (uc *RefreshRatesUseCase) Execute(ctx context.Context) (int, error) {
	recorded := 0

	for _, loanType := range valueobject.AllLoanTypes() {
		entries, err := uc.catalog.ListByType(ctx, loanType)
		if err != nil {
			return recorded, fmt.Errorf("list %s products: %w", loanType, err)
		}

		for _, entry := range entries {
			quotes, err := uc.feed.Quotes(ctx, entry.Product)
			if err != nil {
				uc.logger.Warn("rate feed fetch failed, skipping product",
					"product_id", entry.Product.ID(), "error", err)
				continue
			}

			for _, obs := range quotes {
				if err := uc.rates.Append(ctx, obs); err != nil {
					uc.logger.Warn("failed to append observation",
						"product_id", entry.Product.ID(), "error", err)
					continue
				}
				recorded++

				evt := event.NewRateObservationRecorded(
					obs.ID(), obs.ProductID(),
					obs.RateBps(), obs.TermMonths(),
					obs.ScoreRange().Min(), obs.ScoreRange().Max(),
					obs.ObservedAt(),
				)
				if err := uc.publisher.Publish(ctx, evt); err != nil {
					uc.logger.Warn("failed to publish observation event", "error", err)
				}
			}
		}
	}

	return recorded, nil
}
