package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/service"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

// --- Test fixtures ---

func fixedTime() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func reconstructedProduct(id, name string, perks []string, hasFees bool) model.LoanProduct {
	return model.ReconstructLoanProduct(
		id, "inst-"+id, name, valueobject.LoanTypeMortgage,
		decimal.NewFromInt(50_000), decimal.NewFromInt(1_500_000),
		120, 360, 450, false, 620,
		perks, nil, hasFees, true,
		fixedTime(), fixedTime(),
	)
}

func reconstructedInstitution(id, name string, rating float64) model.Institution {
	return model.ReconstructInstitution(
		id, name, "https://"+id+".example.com", "",
		[]valueobject.LoanType{valueobject.LoanTypeMortgage},
		rating, true, fixedTime(), fixedTime(),
	)
}

func observation(t *testing.T, productID string, rateBps, scoreMin, scoreMax int) model.RateObservation {
	t.Helper()
	scoreRange, err := valueobject.NewCreditScoreRange(scoreMin, scoreMax)
	require.NoError(t, err)
	return model.ReconstructRateObservation(
		"obs-"+productID, productID, fixedTime(), rateBps, 360, scoreRange, nil,
	)
}

func analyzedCandidate(t *testing.T, id string, rateBps int, service, flexibility, approval float64) model.AnalyzedProduct {
	t.Helper()
	rate := observation(t, id, rateBps, 620, 850)
	return model.AnalyzedProduct{
		Product:            reconstructedProduct(id, "Product "+id, nil, false),
		Institution:        reconstructedInstitution("inst-"+id, "Institution "+id, 4.0),
		Rate:               rate,
		Payment:            model.ComputePayment(decimal.NewFromInt(250_000), rateBps, 360),
		AprEstimateBps:     rateBps,
		Flexibility:        flexibility,
		ApprovalLikelihood: approval,
		ServiceScore:       service,
	}
}

// --- Tests ---

func TestDeriveWeights(t *testing.T) {
	t.Run("default weights sum to one with rate heaviest", func(t *testing.T) {
		w := service.DeriveWeights(valueobject.Preferences{})

		assert.InDelta(t, 1.0, w.Sum(), 1e-9)
		assert.Greater(t, w.Rate, w.Payment)
		assert.Greater(t, w.Payment, w.Service)
		assert.Equal(t, w.Service, w.Flexibility)
	})

	t.Run("prioritizing rate raises its share", func(t *testing.T) {
		base := service.DeriveWeights(valueobject.Preferences{})
		boosted := service.DeriveWeights(valueobject.Preferences{PrioritizeRate: true})

		assert.InDelta(t, 1.0, boosted.Sum(), 1e-9)
		assert.Greater(t, boosted.Rate, base.Rate)
		assert.InDelta(t, 0.4, boosted.Rate, 1e-9)
	})

	t.Run("all flags set still sum to one", func(t *testing.T) {
		w := service.DeriveWeights(valueobject.Preferences{
			PrioritizeRate:        true,
			PrioritizePayment:     true,
			PrioritizeService:     true,
			PrioritizeFlexibility: true,
			PrioritizeApproval:    true,
		})
		assert.InDelta(t, 1.0, w.Sum(), 1e-9)
	})
}

func TestRankingEngine_Rank(t *testing.T) {
	engine := service.NewRankingEngine()

	t.Run("empty candidate set yields nil", func(t *testing.T) {
		assert.Nil(t, engine.Rank(nil, valueobject.Preferences{}))
	})

	t.Run("dominant candidate ranks first", func(t *testing.T) {
		candidates := []model.AnalyzedProduct{
			analyzedCandidate(t, "a", 460, 0.6, 0.5, 0.5),
			analyzedCandidate(t, "b", 435, 0.9, 0.9, 0.9), // cheaper and better on every metric
			analyzedCandidate(t, "c", 450, 0.7, 0.6, 0.6),
		}

		ranked := engine.Rank(candidates, valueobject.Preferences{})

		require.Len(t, ranked, 3)
		assert.Equal(t, "b", ranked[0].Product.ID())
		assert.Equal(t, "a", ranked[2].Product.ID())
		assert.Greater(t, ranked[0].TotalScore, ranked[1].TotalScore)
	})

	t.Run("single candidate gets neutral cost scores", func(t *testing.T) {
		ranked := engine.Rank(
			[]model.AnalyzedProduct{analyzedCandidate(t, "solo", 450, 0.8, 0.7, 0.6)},
			valueobject.Preferences{},
		)

		require.Len(t, ranked, 1)
		assert.Equal(t, 0.5, ranked[0].Scores.Rate)
		assert.Equal(t, 0.5, ranked[0].Scores.Payment)
	})

	t.Run("identical cost metrics across the set are neutral", func(t *testing.T) {
		candidates := []model.AnalyzedProduct{
			analyzedCandidate(t, "x", 450, 0.9, 0.5, 0.5),
			analyzedCandidate(t, "y", 450, 0.6, 0.5, 0.5),
		}

		ranked := engine.Rank(candidates, valueobject.Preferences{})

		require.Len(t, ranked, 2)
		for _, sp := range ranked {
			assert.Equal(t, 0.5, sp.Scores.Rate)
			assert.Equal(t, 0.5, sp.Scores.Payment)
		}
		// The better service score decides the order.
		assert.Equal(t, "x", ranked[0].Product.ID())
	})

	t.Run("normalized scores span the unit interval", func(t *testing.T) {
		candidates := []model.AnalyzedProduct{
			analyzedCandidate(t, "cheap", 400, 0.5, 0.5, 0.5),
			analyzedCandidate(t, "mid", 450, 0.5, 0.5, 0.5),
			analyzedCandidate(t, "dear", 500, 0.5, 0.5, 0.5),
		}

		ranked := engine.Rank(candidates, valueobject.Preferences{})

		require.Len(t, ranked, 3)
		assert.Equal(t, "cheap", ranked[0].Product.ID())
		assert.Equal(t, 1.0, ranked[0].Scores.Rate)
		assert.Equal(t, "dear", ranked[2].Product.ID())
		assert.Equal(t, 0.0, ranked[2].Scores.Rate)
	})

	t.Run("ties break by ascending monthly payment", func(t *testing.T) {
		// With rate and payment both prioritized they carry equal weight, so
		// a candidate best on rate and one best on payment tie exactly.
		rateStrong := analyzedCandidate(t, "rate-strong", 435, 0.5, 0.5, 0.5)
		payStrong := analyzedCandidate(t, "pay-strong", 460, 0.5, 0.5, 0.5)
		// Force the payment ordering opposite to the rate ordering.
		rateStrong.Payment = model.PaymentSummary{
			MonthlyPayment: decimal.NewFromInt(1300),
			TotalPayment:   decimal.NewFromInt(468_000),
			TotalInterest:  decimal.NewFromInt(218_000),
		}
		payStrong.Payment = model.PaymentSummary{
			MonthlyPayment: decimal.NewFromInt(1200),
			TotalPayment:   decimal.NewFromInt(432_000),
			TotalInterest:  decimal.NewFromInt(182_000),
		}

		ranked := engine.Rank(
			[]model.AnalyzedProduct{rateStrong, payStrong},
			valueobject.Preferences{PrioritizeRate: true, PrioritizePayment: true},
		)

		require.Len(t, ranked, 2)
		assert.Equal(t, ranked[0].TotalScore, ranked[1].TotalScore)
		assert.Equal(t, "pay-strong", ranked[0].Product.ID(),
			"the lower monthly payment should win the tie")
	})
}
