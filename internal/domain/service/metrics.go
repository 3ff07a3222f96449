package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
)

// ---------------------------------------------------------------------------
// MetricCalculator – domain service deriving per-product analysis metrics
// ---------------------------------------------------------------------------

// feeAprSpreadBps is the placeholder spread added on top of the base rate
// when a product charges fees. Not a regulatory APR calculation.
const feeAprSpreadBps = 50

// MetricCalculator computes payment and auxiliary metrics for eligible
// products. The customer-service score comes from the injected rating source
// so results are reproducible for the same inputs.
type MetricCalculator struct {
	ratings port.ServiceRatingSource
}

// NewMetricCalculator wires dependencies.
func NewMetricCalculator(ratings port.ServiceRatingSource) *MetricCalculator {
	return &MetricCalculator{ratings: ratings}
}

// Analyze builds the AnalyzedProduct for one catalog entry using the rate
// observation matched to the borrower's credit score.
func (c *MetricCalculator) Analyze(
	ctx context.Context,
	entry model.CatalogEntry,
	rate model.RateObservation,
	q model.EligibilityQuery,
) (model.AnalyzedProduct, error) {
	serviceScore, err := c.ratings.Rating(ctx, entry.Institution.ID())
	if err != nil {
		return model.AnalyzedProduct{}, fmt.Errorf("fetch service rating for %s: %w", entry.Institution.ID(), err)
	}

	return model.AnalyzedProduct{
		Product:            entry.Product,
		Institution:        entry.Institution,
		Rate:               rate,
		Payment:            model.ComputePayment(q.Amount, rate.RateBps(), q.TermMonths),
		AprEstimateBps:     aprEstimateBps(entry.Product, rate),
		Flexibility:        flexibilityScore(entry.Product.Perks()),
		ApprovalLikelihood: approvalLikelihood(rate),
		ServiceScore:       clampUnit(serviceScore),
	}, nil
}

// aprEstimateBps adds a flat fee spread when the product charges fees.
func aprEstimateBps(p model.LoanProduct, rate model.RateObservation) int {
	if p.HasFees() {
		return rate.RateBps() + feeAprSpreadBps
	}
	return rate.RateBps()
}

// flexibilityScore starts at 0.5 and rewards prepayment freedom and flexible
// payment options mentioned in the perks, capped at 1.0.
func flexibilityScore(perks []string) float64 {
	score := 0.5
	for _, perk := range perks {
		lower := strings.ToLower(perk)
		if strings.Contains(lower, "prepayment") {
			score += 0.2
			break
		}
	}
	for _, perk := range perks {
		lower := strings.ToLower(perk)
		if strings.Contains(lower, "flexible payment") {
			score += 0.2
			break
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// approvalLikelihood treats a wider qualifying score band as higher apparent
// approval odds: min(1, bandWidth / 200).
func approvalLikelihood(rate model.RateObservation) float64 {
	likelihood := float64(rate.ScoreRange().Width()) / 200.0
	if likelihood > 1.0 {
		likelihood = 1.0
	}
	return likelihood
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
