package port

import (
	"context"
	"errors"

	"github.com/loanscope/loanscope/internal/domain/event"
	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrProductNotFound     = errors.New("loan product not found")
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrNoApplicableRate    = errors.New("no applicable rate observation")
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ProductCatalog persists and queries loan products with their owning
// institutions attached. Query results preserve catalog order.
type ProductCatalog interface {
	Save(ctx context.Context, product model.LoanProduct) error
	FindByID(ctx context.Context, id string) (model.CatalogEntry, error)
	FindEligible(ctx context.Context, q model.EligibilityQuery) ([]model.CatalogEntry, error)
	ListByType(ctx context.Context, t valueobject.LoanType) ([]model.CatalogEntry, error)
}

// InstitutionRepository persists and retrieves institutions.
type InstitutionRepository interface {
	Save(ctx context.Context, inst model.Institution) error
	FindByID(ctx context.Context, id string) (model.Institution, error)
	ListActive(ctx context.Context) ([]model.Institution, error)
}

// RateHistoryRepository stores the append-only rate observation history.
type RateHistoryRepository interface {
	Append(ctx context.Context, obs model.RateObservation) error

	// LatestApplicable returns the most recent observation for the product
	// whose credit-score band contains the given score, or
	// ErrNoApplicableRate when none exists.
	LatestApplicable(ctx context.Context, productID string, creditScore int) (model.RateObservation, error)

	// HistoryForProduct returns up to limit observations for the product,
	// newest first.
	HistoryForProduct(ctx context.Context, productID string, limit int) ([]model.RateObservation, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// ServiceRatingSource supplies a deterministic customer-service score in
// [0, 1] for an institution. Ranking must be reproducible, so implementations
// outside of test stubs must not introduce randomness.
type ServiceRatingSource interface {
	Rating(ctx context.Context, institutionID string) (float64, error)
}

// RateFeed fetches current rate quotes for a product from an upstream
// source. The tracker daemon appends the returned observations to history.
type RateFeed interface {
	Quotes(ctx context.Context, product model.LoanProduct) ([]model.RateObservation, error)
}
