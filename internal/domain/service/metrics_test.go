package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/service"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

type mockRatingSource struct {
	ratingFunc func(ctx context.Context, institutionID string) (float64, error)
}

func (m *mockRatingSource) Rating(ctx context.Context, institutionID string) (float64, error) {
	if m.ratingFunc != nil {
		return m.ratingFunc(ctx, institutionID)
	}
	return 0.8, nil
}

func catalogEntry(id string, perks []string, hasFees bool) model.CatalogEntry {
	return model.CatalogEntry{
		Product:     reconstructedProduct(id, "Product "+id, perks, hasFees),
		Institution: reconstructedInstitution("inst-"+id, "Institution "+id, 4.0),
	}
}

func TestMetricCalculator_Analyze(t *testing.T) {
	q := model.EligibilityQuery{
		LoanType:    valueobject.LoanTypeMortgage,
		Amount:      decimal.NewFromInt(250_000),
		TermMonths:  360,
		CreditScore: 700,
	}

	t.Run("computes payment from the observed rate", func(t *testing.T) {
		calc := service.NewMetricCalculator(&mockRatingSource{})
		entry := catalogEntry("p1", nil, false)
		rate := observation(t, "p1", 435, 620, 850)

		ap, err := calc.Analyze(context.Background(), entry, rate, q)

		require.NoError(t, err)
		expected := model.ComputePayment(q.Amount, 435, 360)
		assert.True(t, ap.Payment.MonthlyPayment.Equal(expected.MonthlyPayment))
		assert.Equal(t, 435, ap.Rate.RateBps())
	})

	t.Run("apr estimate adds a fee spread only when fees apply", func(t *testing.T) {
		calc := service.NewMetricCalculator(&mockRatingSource{})
		rate := observation(t, "p1", 435, 620, 850)

		withFees, err := calc.Analyze(context.Background(), catalogEntry("p1", nil, true), rate, q)
		require.NoError(t, err)
		assert.Equal(t, 485, withFees.AprEstimateBps)

		noFees, err := calc.Analyze(context.Background(), catalogEntry("p1", nil, false), rate, q)
		require.NoError(t, err)
		assert.Equal(t, 435, noFees.AprEstimateBps)
	})

	t.Run("flexibility rewards prepayment and flexible payment perks", func(t *testing.T) {
		calc := service.NewMetricCalculator(&mockRatingSource{})
		rate := observation(t, "p1", 435, 620, 850)

		cases := []struct {
			name  string
			perks []string
			want  float64
		}{
			{"no perks", nil, 0.5},
			{"prepayment only", []string{"No prepayment penalty"}, 0.7},
			{"flexible payment only", []string{"Flexible payment schedule"}, 0.7},
			{"both perks", []string{"No prepayment penalty", "Flexible payment dates"}, 0.9},
			{"duplicate perks count once", []string{"Prepayment allowed", "Early prepayment ok"}, 0.7},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ap, err := calc.Analyze(context.Background(), catalogEntry("p1", tc.perks, false), rate, q)
				require.NoError(t, err)
				assert.InDelta(t, tc.want, ap.Flexibility, 1e-9)
			})
		}
	})

	t.Run("approval likelihood scales with band width", func(t *testing.T) {
		calc := service.NewMetricCalculator(&mockRatingSource{})
		entry := catalogEntry("p1", nil, false)

		narrow, err := calc.Analyze(context.Background(), entry, observation(t, "p1", 435, 700, 750), q)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, narrow.ApprovalLikelihood, 1e-9)

		wide, err := calc.Analyze(context.Background(), entry, observation(t, "p1", 435, 300, 850), q)
		require.NoError(t, err)
		assert.Equal(t, 1.0, wide.ApprovalLikelihood, "width beyond 200 caps at 1")
	})

	t.Run("service score is clamped to the unit interval", func(t *testing.T) {
		calc := service.NewMetricCalculator(&mockRatingSource{
			ratingFunc: func(_ context.Context, _ string) (float64, error) { return 1.7, nil },
		})
		ap, err := calc.Analyze(context.Background(), catalogEntry("p1", nil, false), observation(t, "p1", 435, 620, 850), q)
		require.NoError(t, err)
		assert.Equal(t, 1.0, ap.ServiceScore)
	})

	t.Run("propagates rating source failures", func(t *testing.T) {
		calc := service.NewMetricCalculator(&mockRatingSource{
			ratingFunc: func(_ context.Context, _ string) (float64, error) {
				return 0, fmt.Errorf("rating service unavailable")
			},
		})
		_, err := calc.Analyze(context.Background(), catalogEntry("p1", nil, false), observation(t, "p1", 435, 620, 850), q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch service rating")
	})
}
