package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
)

func testProduct(t *testing.T) model.LoanProduct {
	t.Helper()
	p, err := model.NewLoanProduct(
		"inst-001", "30-Year Fixed", valueobject.LoanTypeMortgage,
		decimal.NewFromInt(50_000), decimal.NewFromInt(1_000_000),
		120, 360,
		450, false, 620,
		[]string{"No prepayment penalty"}, []string{"Proof of income"}, true,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func mortgageQuery() model.EligibilityQuery {
	return model.EligibilityQuery{
		LoanType:    valueobject.LoanTypeMortgage,
		Amount:      decimal.NewFromInt(250_000),
		TermMonths:  360,
		CreditScore: 700,
	}
}

func TestNewLoanProduct_Validation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("rejects min amount above max amount", func(t *testing.T) {
		_, err := model.NewLoanProduct(
			"inst-001", "Bad Bounds", valueobject.LoanTypeMortgage,
			decimal.NewFromInt(500_000), decimal.NewFromInt(100_000),
			120, 360, 450, false, 620, nil, nil, false, now,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "minimum amount exceeds maximum")
	})

	t.Run("rejects min term above max term", func(t *testing.T) {
		_, err := model.NewLoanProduct(
			"inst-001", "Bad Terms", valueobject.LoanTypeMortgage,
			decimal.NewFromInt(50_000), decimal.NewFromInt(500_000),
			360, 120, 450, false, 620, nil, nil, false, now,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "minimum term exceeds maximum")
	})

	t.Run("allows open upper bounds", func(t *testing.T) {
		p, err := model.NewLoanProduct(
			"inst-001", "Open Bounds", valueobject.LoanTypeStudent,
			decimal.NewFromInt(1000), decimal.Zero,
			60, 0, 520, true, 0, nil, nil, false, now,
		)
		require.NoError(t, err)
		assert.True(t, p.MaxAmount().IsZero())
		assert.Equal(t, 0, p.MaxTermMonths())
	})

	t.Run("rejects missing institution", func(t *testing.T) {
		_, err := model.NewLoanProduct(
			"", "Orphan", valueobject.LoanTypeAuto,
			decimal.NewFromInt(5000), decimal.Zero,
			24, 84, 600, false, 0, nil, nil, false, now,
		)
		require.Error(t, err)
	})
}

func TestLoanProduct_Matches(t *testing.T) {
	p := testProduct(t)

	t.Run("admits a query within all bounds", func(t *testing.T) {
		assert.True(t, p.Matches(mortgageQuery()))
	})

	t.Run("rejects a different loan type", func(t *testing.T) {
		q := mortgageQuery()
		q.LoanType = valueobject.LoanTypeAuto
		assert.False(t, p.Matches(q))
	})

	t.Run("rejects an amount below the minimum", func(t *testing.T) {
		q := mortgageQuery()
		q.Amount = decimal.NewFromInt(10_000)
		assert.False(t, p.Matches(q))
	})

	t.Run("rejects an amount above the maximum", func(t *testing.T) {
		q := mortgageQuery()
		q.Amount = decimal.NewFromInt(2_000_000)
		assert.False(t, p.Matches(q))
	})

	t.Run("rejects a term outside the window", func(t *testing.T) {
		q := mortgageQuery()
		q.TermMonths = 60
		assert.False(t, p.Matches(q))

		q.TermMonths = 480
		assert.False(t, p.Matches(q))
	})

	t.Run("rejects a credit score below the floor", func(t *testing.T) {
		q := mortgageQuery()
		q.CreditScore = 600
		assert.False(t, p.Matches(q))
	})

	t.Run("boundary values are inclusive", func(t *testing.T) {
		q := mortgageQuery()
		q.Amount = decimal.NewFromInt(50_000)
		q.TermMonths = 360
		q.CreditScore = 620
		assert.True(t, p.Matches(q))
	})

	t.Run("rejects an inactive product", func(t *testing.T) {
		inactive := p.Deactivate(time.Now().UTC())
		assert.False(t, inactive.Matches(mortgageQuery()))
	})

	t.Run("zero upper bounds are open", func(t *testing.T) {
		open, err := model.NewLoanProduct(
			"inst-001", "Jumbo", valueobject.LoanTypeMortgage,
			decimal.NewFromInt(50_000), decimal.Zero,
			120, 0, 450, false, 620, nil, nil, false, time.Now().UTC(),
		)
		require.NoError(t, err)

		q := mortgageQuery()
		q.Amount = decimal.NewFromInt(10_000_000)
		q.TermMonths = 600
		assert.True(t, open.Matches(q))
	})
}

func TestEligibilityQuery_Relax(t *testing.T) {
	q := mortgageQuery()

	relaxedScore := q.Relax(30, 0)
	assert.Equal(t, 730, relaxedScore.CreditScore)
	assert.Equal(t, q.TermMonths, relaxedScore.TermMonths)

	shorter := q.Relax(0, -12)
	assert.Equal(t, 348, shorter.TermMonths)
	assert.Equal(t, q.CreditScore, shorter.CreditScore)

	// The original query is unchanged.
	assert.Equal(t, 700, q.CreditScore)
	assert.Equal(t, 360, q.TermMonths)
}
