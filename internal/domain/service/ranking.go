package service

import (
	"sort"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RankingEngine – preference-weighted multi-criteria scoring
// ---------------------------------------------------------------------------

// Weights holds the per-metric weights. DeriveWeights always returns a set
// normalized to sum to 1.
type Weights struct {
	Rate        float64
	Payment     float64
	Service     float64
	Flexibility float64
	Approval    float64
}

// Default and prioritized weight values before renormalization.
const (
	defaultRateWeight        = 0.3
	defaultPaymentWeight     = 0.2
	defaultServiceWeight     = 0.1
	defaultFlexibilityWeight = 0.1
	defaultApprovalWeight    = 0.2

	prioritizedCostWeight    = 0.4
	prioritizedBenefitWeight = 0.3
)

// DeriveWeights maps the caller's prioritize flags to metric weights and
// renormalizes them to sum to 1.
func DeriveWeights(p valueobject.Preferences) Weights {
	w := Weights{
		Rate:        defaultRateWeight,
		Payment:     defaultPaymentWeight,
		Service:     defaultServiceWeight,
		Flexibility: defaultFlexibilityWeight,
		Approval:    defaultApprovalWeight,
	}
	if p.PrioritizeRate {
		w.Rate = prioritizedCostWeight
	}
	if p.PrioritizePayment {
		w.Payment = prioritizedCostWeight
	}
	if p.PrioritizeService {
		w.Service = prioritizedBenefitWeight
	}
	if p.PrioritizeFlexibility {
		w.Flexibility = prioritizedBenefitWeight
	}
	if p.PrioritizeApproval {
		w.Approval = prioritizedBenefitWeight
	}

	sum := w.Sum()
	w.Rate /= sum
	w.Payment /= sum
	w.Service /= sum
	w.Flexibility /= sum
	w.Approval /= sum
	return w
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Rate + w.Payment + w.Service + w.Flexibility + w.Approval
}

// RankingEngine normalizes metrics across a candidate set, applies
// preference weights, and orders candidates by total score.
type RankingEngine struct{}

// NewRankingEngine returns a new engine instance.
func NewRankingEngine() *RankingEngine {
	return &RankingEngine{}
}

// Rank scores every candidate and returns them sorted by total score
// descending. Ties break by ascending monthly payment so the order is
// deterministic.
//
// Cost metrics (rate, monthly payment) are min-max normalized across the set
// and inverted so cheaper candidates score higher; a degenerate metric where
// every candidate shares the same value contributes a neutral 0.5.
// Benefit metrics (service, flexibility, approval) are already in [0, 1] and
// used directly.
func (e *RankingEngine) Rank(
	candidates []model.AnalyzedProduct,
	prefs valueobject.Preferences,
) []model.ScoredProduct {
	if len(candidates) == 0 {
		return nil
	}

	weights := DeriveWeights(prefs)

	rates := make([]float64, len(candidates))
	payments := make([]float64, len(candidates))
	for i, c := range candidates {
		rates[i] = float64(c.Rate.RateBps())
		payments[i] = c.Payment.MonthlyPayment.InexactFloat64()
	}
	rateMin, rateMax := minMax(rates)
	payMin, payMax := minMax(payments)

	scored := make([]model.ScoredProduct, len(candidates))
	for i, c := range candidates {
		scores := model.MetricScores{
			Rate:        invertedScore(rates[i], rateMin, rateMax),
			Payment:     invertedScore(payments[i], payMin, payMax),
			Service:     c.ServiceScore,
			Flexibility: c.Flexibility,
			Approval:    c.ApprovalLikelihood,
		}
		scored[i] = model.ScoredProduct{
			AnalyzedProduct: c,
			Scores:          scores,
			TotalScore: weights.Rate*scores.Rate +
				weights.Payment*scores.Payment +
				weights.Service*scores.Service +
				weights.Flexibility*scores.Flexibility +
				weights.Approval*scores.Approval,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].TotalScore != scored[j].TotalScore {
			return scored[i].TotalScore > scored[j].TotalScore
		}
		return scored[i].Payment.MonthlyPayment.LessThan(scored[j].Payment.MonthlyPayment)
	})

	return scored
}

// invertedScore min-max normalizes a cost value and inverts it so lower cost
// scores higher. A degenerate range yields the neutral 0.5 rather than NaN.
func invertedScore(v, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return 1 - (v-min)/(max-min)
}

func minMax(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
