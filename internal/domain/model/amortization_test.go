package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/internal/domain/model"
)

func TestComputePayment_30YearMortgage(t *testing.T) {
	// $100,000 at 5.00% (500 bps) for 360 months (30 years)
	principal := decimal.NewFromInt(100_000)

	summary := model.ComputePayment(principal, 500, 360)

	// Monthly payment for $100K at 5% for 30 years is approximately $536.82.
	expected := decimal.NewFromFloat(536.82)
	assert.True(t,
		summary.MonthlyPayment.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"monthly payment should be approximately $536.82, got %s", summary.MonthlyPayment,
	)

	// Total payment = monthly * term, total interest = total - principal.
	assert.True(t, summary.TotalPayment.Equal(summary.MonthlyPayment.Mul(decimal.NewFromInt(360))))
	assert.True(t, summary.TotalInterest.Equal(summary.TotalPayment.Sub(principal)))
	assert.True(t, summary.TotalInterest.IsPositive())
}

func TestComputePayment_ShortTermAuto(t *testing.T) {
	// $10,000 at 8% (800 bps) for 12 months: approximately $869.88/month.
	summary := model.ComputePayment(decimal.NewFromInt(10_000), 800, 12)

	expected := decimal.NewFromFloat(869.88)
	assert.True(t,
		summary.MonthlyPayment.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"monthly payment should be approximately $869.88, got %s", summary.MonthlyPayment,
	)
}

func TestComputePayment_ZeroRate(t *testing.T) {
	// A promotional 0% loan splits the principal evenly across the term.
	summary := model.ComputePayment(decimal.NewFromInt(12_000), 0, 12)

	require.True(t, summary.MonthlyPayment.Equal(decimal.NewFromInt(1000)),
		"zero-rate payment should be an even split, got %s", summary.MonthlyPayment)
	assert.True(t, summary.TotalPayment.Equal(decimal.NewFromInt(12_000)))
	assert.True(t, summary.TotalInterest.IsZero())
}

func TestComputePayment_InvalidInputs(t *testing.T) {
	t.Run("non-positive term", func(t *testing.T) {
		summary := model.ComputePayment(decimal.NewFromInt(10_000), 500, 0)
		assert.True(t, summary.MonthlyPayment.IsZero())
	})

	t.Run("non-positive principal", func(t *testing.T) {
		summary := model.ComputePayment(decimal.Zero, 500, 12)
		assert.True(t, summary.MonthlyPayment.IsZero())
	})
}

func TestComputePayment_HigherRateCostsMore(t *testing.T) {
	principal := decimal.NewFromInt(250_000)

	low := model.ComputePayment(principal, 435, 360)
	high := model.ComputePayment(principal, 460, 360)

	assert.True(t, high.MonthlyPayment.GreaterThan(low.MonthlyPayment))
	assert.True(t, high.TotalInterest.GreaterThan(low.TotalInterest))
}
