package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RateObservation – append-only rate history record
// ---------------------------------------------------------------------------

// RateObservation is a timestamped interest rate applicable to a product for
// a given credit-score band. Observations are never updated, only appended.
type RateObservation struct {
	id         string
	productID  string
	observedAt time.Time
	rateBps    int
	termMonths int
	scoreRange valueobject.CreditScoreRange
	conditions []string
}

// NewRateObservation records a new observation.
func NewRateObservation(
	productID string,
	observedAt time.Time,
	rateBps, termMonths int,
	scoreRange valueobject.CreditScoreRange,
	conditions []string,
) (RateObservation, error) {
	if productID == "" {
		return RateObservation{}, errors.New("product ID is required")
	}
	if observedAt.IsZero() {
		return RateObservation{}, errors.New("observation time is required")
	}
	if rateBps < 0 {
		return RateObservation{}, errors.New("rate must not be negative")
	}
	if termMonths <= 0 {
		return RateObservation{}, errors.New("term months must be positive")
	}

	return RateObservation{
		id:         uuid.New().String(),
		productID:  productID,
		observedAt: observedAt,
		rateBps:    rateBps,
		termMonths: termMonths,
		scoreRange: scoreRange,
		conditions: conditions,
	}, nil
}

// ReconstructRateObservation rebuilds an observation from persistence.
func ReconstructRateObservation(
	id, productID string,
	observedAt time.Time,
	rateBps, termMonths int,
	scoreRange valueobject.CreditScoreRange,
	conditions []string,
) RateObservation {
	return RateObservation{
		id:         id,
		productID:  productID,
		observedAt: observedAt,
		rateBps:    rateBps,
		termMonths: termMonths,
		scoreRange: scoreRange,
		conditions: conditions,
	}
}

// AppliesTo reports whether the observation's score band contains the score.
func (o RateObservation) AppliesTo(score int) bool {
	return o.scoreRange.Contains(score)
}

// ---------------------------------------------------------------------------
// Getters
// ---------------------------------------------------------------------------

func (o RateObservation) ID() string                               { return o.id }
func (o RateObservation) ProductID() string                        { return o.productID }
func (o RateObservation) ObservedAt() time.Time                    { return o.observedAt }
func (o RateObservation) RateBps() int                             { return o.rateBps }
func (o RateObservation) TermMonths() int                          { return o.termMonths }
func (o RateObservation) ScoreRange() valueobject.CreditScoreRange { return o.scoreRange }
func (o RateObservation) Conditions() []string                     { return o.conditions }
